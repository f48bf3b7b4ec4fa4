package dto

type SeanceListDTO struct {
	ID          uint   `json:"id"`
	Reference   string `json:"reference"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	Subject     string `json:"subject"`
	Status      int    `json:"status"`
	StatusLabel string `json:"status_label"`
	Note        string `json:"note"`
	ClientName  string `json:"client_name"`
	CoachName   string `json:"coach_name"`
}
