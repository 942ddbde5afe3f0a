package domain

import "errors"

// Errori di dominio (senza dipendenze esterne).
var (
	ErrNotFound       = errors.New("risorsa non trovata")
	ErrInvalidInput   = errors.New("input non valido")
	ErrDuplicate      = errors.New("risorsa duplicata")
	ErrUnauthorized   = errors.New("non autorizzato")
	ErrInvalidChannel = errors.New("canale di vendita non valido")
	ErrInvalidPeriod  = errors.New("periodo non valido")
)
