package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dvillarroel/actifijo/internal/common"
	"github.com/dvillarroel/actifijo/internal/server/auth"
	"github.com/dvillarroel/actifijo/internal/server/models"
	"github.com/dvillarroel/actifijo/internal/server/store"
)

type tokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Access string `json:"access"`
}

// handleToken exchanges credentials for an access token. Every failure mode
// looks the same to the caller.
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := decodeJSON(r, &req); err != nil || req.Username == "" || req.Password == "" {
		writeDetail(w, http.StatusUnauthorized, msgBadCreds)
		return
	}

	cred, err := s.store.Usuarios.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeDetail(w, http.StatusUnauthorized, msgBadCreds)
			return
		}
		writeDetail(w, http.StatusInternalServerError, msgServerError)
		return
	}

	if err := auth.CheckPassword(cred.Usuario.PasswordHash, req.Password); err != nil {
		writeDetail(w, http.StatusUnauthorized, msgBadCreds)
		return
	}

	token, err := s.issueToken(cred)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, msgServerError)
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{Access: token})
}

// handleRegister creates a tenant with its admin account and signs the new
// admin in.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var reg models.Registration
	if err := decodeJSON(r, &reg); err != nil {
		writeDetail(w, http.StatusBadRequest, "Cuerpo de la petición inválido.")
		return
	}

	if errs := validateRegistration(reg); len(errs) > 0 {
		writeFieldErrors(w, errs)
		return
	}

	hash, err := auth.HashPassword(reg.AdminPassword)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, msgServerError)
		return
	}

	cred, err := s.store.Usuarios.Register(r.Context(), reg, hash)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			writeFieldErrors(w, fieldErrors{"admin_username": {"Este nombre de usuario ya está en uso."}})
			return
		}
		writeDetail(w, http.StatusInternalServerError, msgServerError)
		return
	}

	token, err := s.issueToken(cred)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, msgServerError)
		return
	}
	writeJSON(w, http.StatusCreated, tokenResponse{Access: token})
}

func (s *Server) issueToken(cred store.Credential) (string, error) {
	return auth.GenerateToken(auth.Identity{
		Username:       cred.Usuario.Username,
		Email:          cred.Usuario.Email,
		NombreCompleto: strings.TrimSpace(cred.Usuario.FirstName + " " + cred.Usuario.LastName),
		EmpresaID:      cred.Usuario.EmpresaID,
		EmpresaNombre:  cred.EmpresaNombre,
		Roles:          cred.Roles,
		IsAdmin:        cred.IsAdmin,
	}, []byte(s.config.SecretKey), s.config.TokenTTL)
}

// Card data is verified for presence only and never stored.
func validateRegistration(reg models.Registration) fieldErrors {
	errs := fieldErrors{}
	required := map[string]string{
		"empresa_nombre":   reg.EmpresaNombre,
		"empresa_nit":      reg.EmpresaNIT,
		"admin_first_name": reg.AdminFirstName,
		"admin_apellido_p": reg.AdminApellidoP,
		"admin_ci":         reg.AdminCI,
		"admin_email":      reg.AdminEmail,
		"admin_username":   reg.AdminUsername,
		"admin_password":   reg.AdminPassword,
		"card_number":      reg.CardNumber,
		"card_expiry":      reg.CardExpiry,
		"card_cvc":         reg.CardCVC,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			errs.add(field, msgRequired)
		}
	}
	return errs
}
