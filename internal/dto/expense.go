package dto

import "github.com/GregMSThompson/budget-backend/internal/models"

type CreateExpenseRequest struct {
	Name     string   `json:"name"`
	Amount   *float64 `json:"amount"`
	Category string   `json:"category"`
}

type ExpenseList struct {
	Month    string           `json:"month"`
	Expenses []models.Expense `json:"expenses"`
}

// CSVExport is a rendered CSV file ready to be served or written.
type CSVExport struct {
	Filename string
	Rows     int
	Body     []byte
}
