package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/eod-app/eod-lambda/internal/config"
	"github.com/google/uuid"
)

const deviceTokenTTL = 365 * 24 * time.Hour

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

type registerDeviceDTO struct {
	PairingSecret string `json:"pairing_secret"`
	DeviceName    string `json:"device_name"`
}

// RegisterDevice exchanges the pairing secret for a long-lived device token.
// The app is single-user; any device holding the secret belongs to the owner.
func (h *Handler) RegisterDevice(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto registerDeviceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	secret := os.Getenv("DEVICE_PAIRING_SECRET")
	if secret == "" || subtle.ConstantTimeCompare([]byte(dto.PairingSecret), []byte(secret)) != 1 {
		log.Warn("Device pairing attempt with wrong secret")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	deviceID := uuid.New().String()
	token, err := GenerateJWT(deviceID, RoleOwner, deviceTokenTTL)
	if err != nil {
		log.WithError(err).Error("Failed to generate device token")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    token,
		Path:     "/",
		MaxAge:   int(deviceTokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	log.Infof("Paired new device %s (%s)", deviceID, dto.DeviceName)
	config.JSON(w, http.StatusCreated, map[string]string{
		"device_id": deviceID,
		"token":     token,
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "logout successful",
	})
}
