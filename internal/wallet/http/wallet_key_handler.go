// Package http provides HTTP handlers for wallet key operations.
// Private keys are stored PIN-protected under envelope encryption; the batch master key
// rotation is an operator task and has no HTTP route.
package http

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	cryptoDomain "github.com/allisson/walletkeys/internal/crypto/domain"
	"github.com/allisson/walletkeys/internal/httputil"
	customValidation "github.com/allisson/walletkeys/internal/validation"
	walletDomain "github.com/allisson/walletkeys/internal/wallet/domain"
	"github.com/allisson/walletkeys/internal/wallet/http/dto"
	walletUseCase "github.com/allisson/walletkeys/internal/wallet/usecase"
)

// WalletKeyHandler handles HTTP requests for wallet key operations.
type WalletKeyHandler struct {
	walletKeyUseCase walletUseCase.WalletKeyUseCase
	logger           *slog.Logger
}

// NewWalletKeyHandler creates a new wallet key handler with required dependencies.
func NewWalletKeyHandler(
	walletKeyUseCase walletUseCase.WalletKeyUseCase,
	logger *slog.Logger,
) *WalletKeyHandler {
	return &WalletKeyHandler{
		walletKeyUseCase: walletKeyUseCase,
		logger:           logger,
	}
}

// RegisterRoutes mounts the wallet key routes on the given group.
func (h *WalletKeyHandler) RegisterRoutes(group *gin.RouterGroup) {
	key := group.Group("/wallets/:wallet_id/key")
	key.POST("", h.CreateHandler)
	key.POST("/decrypt", h.DecryptHandler)
	key.POST("/verify", h.VerifyPinHandler)
	key.PUT("/pin", h.ChangePinHandler)
	key.DELETE("", h.DeleteHandler)
}

// walletID extracts and validates the wallet id URL parameter. On failure it writes
// the response and returns false.
func (h *WalletKeyHandler) walletID(c *gin.Context) (string, bool) {
	walletID := c.Param("wallet_id")
	if err := customValidation.ValidateWalletID(walletID); err != nil {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("wallet_id: %w", err), h.logger)
		return "", false
	}
	return walletID, true
}

// unlockFailures are the causes a PIN-unlocking request must not be able to tell apart.
var unlockFailures = []error{
	walletDomain.ErrAuthenticationFailed,
	walletDomain.ErrKeyRecordNotFound,
	walletDomain.ErrMasterKeyMismatch,
	walletDomain.ErrMalformedRecord,
}

// handleUnlockError answers every unlock failure with the same 401 body and keeps the
// real cause in the server log. Other errors go through the regular mapping.
func (h *WalletKeyHandler) handleUnlockError(c *gin.Context, err error) {
	for _, target := range unlockFailures {
		if !errors.Is(err, target) {
			continue
		}
		h.logger.Warn("wallet unlock failed",
			slog.String("wallet_id", c.Param("wallet_id")),
			slog.Any("error", err),
		)
		httputil.HandleErrorGin(c, walletDomain.ErrAuthenticationFailed, nil)
		return
	}
	httputil.HandleErrorGin(c, err, h.logger)
}

// CreateHandler stores a wallet key, generating one when the body has no private_key.
// POST /v1/wallets/:wallet_id/key
// Returns 201 Created with record metadata.
func (h *WalletKeyHandler) CreateHandler(c *gin.Context) {
	walletID, ok := h.walletID(c)
	if !ok {
		return
	}

	var req dto.CreateWalletKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	var (
		record *walletDomain.EncryptedKeyRecord
		err    error
	)
	if req.PrivateKey == "" {
		record, err = h.walletKeyUseCase.GenerateWalletKey(c.Request.Context(), walletID, req.UserID, req.Pin)
	} else {
		privateKey, decodeErr := base64.StdEncoding.DecodeString(req.PrivateKey)
		if decodeErr != nil {
			httputil.HandleValidationErrorGin(c, fmt.Errorf("invalid base64 private_key: %w", decodeErr), h.logger)
			return
		}
		record, err = h.walletKeyUseCase.CreateWalletKey(
			c.Request.Context(),
			walletID,
			req.UserID,
			privateKey,
			req.Pin,
		)
		cryptoDomain.Zero(privateKey)
	}
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapRecordToResponse(record))
}

// DecryptHandler unlocks the wallet key with the PIN.
// POST /v1/wallets/:wallet_id/key/decrypt
// Returns 200 OK with the plaintext key. SECURITY: The key is zeroed after the response is written.
func (h *WalletKeyHandler) DecryptHandler(c *gin.Context) {
	walletID, ok := h.walletID(c)
	if !ok {
		return
	}

	var req dto.PinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	privateKey, err := h.walletKeyUseCase.SignOrDecrypt(c.Request.Context(), walletID, req.Pin)
	if err != nil {
		h.handleUnlockError(c, err)
		return
	}
	defer cryptoDomain.Zero(privateKey)

	c.JSON(http.StatusOK, dto.PrivateKeyResponse{PrivateKey: privateKey})
}

// VerifyPinHandler reports whether the PIN unlocks the wallet.
// POST /v1/wallets/:wallet_id/key/verify
func (h *WalletKeyHandler) VerifyPinHandler(c *gin.Context) {
	walletID, ok := h.walletID(c)
	if !ok {
		return
	}

	var req dto.PinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	valid, err := h.walletKeyUseCase.VerifyPin(c.Request.Context(), walletID, req.Pin)
	if err != nil {
		h.handleUnlockError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyPinResponse{Valid: valid})
}

// ChangePinHandler re-encrypts the wallet key under a new PIN.
// PUT /v1/wallets/:wallet_id/key/pin
// Returns 204 No Content.
func (h *WalletKeyHandler) ChangePinHandler(c *gin.Context) {
	walletID, ok := h.walletID(c)
	if !ok {
		return
	}

	var req dto.ChangePinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	if err := h.walletKeyUseCase.ChangePin(c.Request.Context(), walletID, req.OldPin, req.NewPin); err != nil {
		h.handleUnlockError(c, err)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// DeleteHandler removes the wallet key record.
// DELETE /v1/wallets/:wallet_id/key
// Returns 204 No Content.
func (h *WalletKeyHandler) DeleteHandler(c *gin.Context) {
	walletID, ok := h.walletID(c)
	if !ok {
		return
	}

	if err := h.walletKeyUseCase.DeleteWalletKey(c.Request.Context(), walletID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}
