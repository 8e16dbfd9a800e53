package cargo

import (
	"fmt"
)

type BookingCreateRequest struct {
	SenderName       string  `json:"sender_name" form:"sender_name" validate:"required,min=1,max=255"`
	SenderAddress    string  `json:"sender_address" form:"sender_address" validate:"required,min=1"`
	SenderPhone      string  `json:"sender_phone" form:"sender_phone" validate:"omitempty,max=20"`
	RecipientName    string  `json:"recipient_name" form:"recipient_name" validate:"required,min=1,max=255"`
	RecipientAddress string  `json:"recipient_address" form:"recipient_address" validate:"required,min=1"`
	RecipientPhone   string  `json:"recipient_phone" form:"recipient_phone" validate:"omitempty,max=20"`
	CargoDescription string  `json:"cargo_description" form:"cargo_description" validate:"omitempty"`
	Weight           float64 `json:"weight" form:"weight" validate:"required,gt=0"`
	CargoValue       float64 `json:"cargo_value" form:"cargo_value" validate:"required,gt=0"`
}

type StatusUpdateRequest struct {
	Status   string `json:"status" form:"status" validate:"required"`
	Location string `json:"location" form:"location" validate:"required,max=255"`
	Notes    string `json:"notes" form:"notes" validate:"omitempty"`
}

type TrackShipmentRequest struct {
	BookingID uint `json:"booking_id" form:"booking_id" validate:"required"`
}

type InvoiceCreateRequest struct {
	Amount float64 `json:"amount" form:"amount" validate:"required,gt=0"`
}

type SupportTicketRequest struct {
	Subject     string `json:"subject" form:"subject" validate:"required,min=1,max=255"`
	Description string `json:"description" form:"description" validate:"required,min=1"`
}

func (r BookingCreateRequest) Validate() error {
	if r.SenderName == "" {
		return fmt.Errorf("sender name is required")
	}
	if r.SenderAddress == "" {
		return fmt.Errorf("sender address is required")
	}
	if r.RecipientName == "" {
		return fmt.Errorf("recipient name is required")
	}
	if r.RecipientAddress == "" {
		return fmt.Errorf("recipient address is required")
	}
	if r.Weight <= 0 {
		return fmt.Errorf("weight must be greater than zero")
	}
	if r.CargoValue <= 0 {
		return fmt.Errorf("cargo value must be greater than zero")
	}
	return nil
}

func (r StatusUpdateRequest) Validate() error {
	if r.Status == "" {
		return fmt.Errorf("status is required")
	}
	if r.Location == "" {
		return fmt.Errorf("location is required")
	}
	return nil
}

func (r TrackShipmentRequest) Validate() error {
	if r.BookingID == 0 {
		return fmt.Errorf("booking_id is required")
	}
	return nil
}

func (r InvoiceCreateRequest) Validate() error {
	if r.Amount <= 0 {
		return fmt.Errorf("amount must be greater than zero")
	}
	return nil
}

func (r SupportTicketRequest) Validate() error {
	if r.Subject == "" {
		return fmt.Errorf("subject is required")
	}
	if r.Description == "" {
		return fmt.Errorf("description is required")
	}
	return nil
}
