package models

import (
	"errors"
	"strings"
	"time"
)

type BookingStatus string

const (
	// Booking statuses (workshop service flow)
	BookingStatusPending   BookingStatus = "pending"   // Submitted by the customer, awaiting review
	BookingStatusConfirmed BookingStatus = "confirmed" // Accepted, slot reserved
	BookingStatusCompleted BookingStatus = "completed" // Service done
	BookingStatusCancelled BookingStatus = "cancelled" // Cancelled by the shop or the customer
)

type Booking struct {
	ID            string        `bson:"_id,omitempty" json:"id"`
	CustomerName  string        `bson:"customer_name" json:"customerName"`
	CustomerPhone string        `bson:"customer_phone" json:"customerPhone"`
	CustomerEmail string        `bson:"customer_email,omitempty" json:"customerEmail,omitempty"`
	ServiceID     string        `bson:"service_id" json:"serviceId"`
	ServiceName   string        `bson:"service_name" json:"serviceName"`
	Date          string        `bson:"date" json:"date"`
	Message       string        `bson:"message" json:"message"`
	Status        BookingStatus `bson:"status" json:"status"`
	CreatedAt     time.Time     `bson:"created_at" json:"createdAt"`
}

// ParseBookingStatus maps a raw string to a BookingStatus.
func ParseBookingStatus(status string) (BookingStatus, error) {
	switch strings.ToLower(status) {
	case string(BookingStatusPending):
		return BookingStatusPending, nil
	case string(BookingStatusConfirmed):
		return BookingStatusConfirmed, nil
	case string(BookingStatusCompleted):
		return BookingStatusCompleted, nil
	case string(BookingStatusCancelled):
		return BookingStatusCancelled, nil
	default:
		return "", errors.New("invalid booking status")
	}
}

// CanTransitionTo enforces the admin-driven status flow:
// pending -> confirmed/cancelled, confirmed -> completed/cancelled.
// Completed and cancelled are terminal.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch b.Status {
	case BookingStatusPending:
		return next == BookingStatusConfirmed || next == BookingStatusCancelled
	case BookingStatusConfirmed:
		return next == BookingStatusCompleted || next == BookingStatusCancelled
	default:
		return false
	}
}
