package models

type GenericResponse struct {
	Message string `json:"message"`
}

type ComparisonRequest struct {
	Id int `json:"id"`
}
