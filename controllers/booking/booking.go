package bookingcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ThaRealJozef/DimaVelo-sub000/models"
	"github.com/ThaRealJozef/DimaVelo-sub000/repository"
)

type BookingInput struct {
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerPhone string `json:"customerPhone" binding:"required"`
	CustomerEmail string `json:"customerEmail"`
	ServiceID     string `json:"serviceId" binding:"required"`
	ServiceName   string `json:"serviceName" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Message       string `json:"message"`
}

// CreateBooking takes a service booking from the storefront form. New
// bookings always start pending and are pushed to the admin live feed.
func CreateBooking(bookings repository.BookingRepository, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input BookingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		booking := models.Booking{
			CustomerName:  input.CustomerName,
			CustomerPhone: input.CustomerPhone,
			CustomerEmail: input.CustomerEmail,
			ServiceID:     input.ServiceID,
			ServiceName:   input.ServiceName,
			Date:          input.Date,
			Message:       input.Message,
		}
		if err := bookings.Create(c.Request.Context(), &booking); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
			return
		}

		hub.BroadcastNewBooking(booking)
		c.JSON(http.StatusCreated, booking)
	}
}

// GetBookings lists all bookings, newest first.
func GetBookings(bookings repository.BookingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := bookings.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// UpdateBookingStatus moves a booking along the admin flow. Transitions out
// of terminal states are rejected.
func UpdateBookingStatus(bookings repository.BookingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		status, err := models.ParseBookingStatus(input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking status"})
			return
		}

		ctx := c.Request.Context()
		booking, err := bookings.GetByID(ctx, c.Param("id"))
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch booking"})
			return
		}

		if !booking.CanTransitionTo(status) {
			c.JSON(http.StatusConflict, gin.H{"error": "Invalid status transition"})
			return
		}

		if err := bookings.UpdateStatus(ctx, booking.ID, status); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking"})
			return
		}

		booking.Status = status
		c.JSON(http.StatusOK, booking)
	}
}

// DeleteBooking removes a booking.
func DeleteBooking(bookings repository.BookingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := bookings.Delete(c.Request.Context(), c.Param("id"))
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete booking"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
	}
}
