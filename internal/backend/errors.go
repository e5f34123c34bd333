package backend

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classe les échecs d'appel au backend.
type Kind int

const (
	KindUnknown Kind = iota
	// KindTransport : la requête n'a pas abouti (réseau, DNS, timeout).
	KindTransport
	// KindStatus : le backend a répondu avec un statut hors 2xx.
	KindStatus
	// KindMalformed : la réponse n'a pas pu être décodée.
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Error est l'erreur renvoyée par toutes les méthodes de Client.
type Error struct {
	Kind   Kind
	Op     string
	Status int
	// Message est le champ "message" du corps d'erreur, s'il existe.
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStatus:
		if e.Message != "" {
			return fmt.Sprintf("%s: statut %d: %s", e.Op, e.Status, e.Message)
		}
		return fmt.Sprintf("%s: statut %d", e.Op, e.Status)
	default:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf renvoie la catégorie d'une erreur du client, KindUnknown sinon.
func KindOf(err error) Kind {
	var be *Error
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindUnknown
}

// IsStatus indique si err est une réponse du backend avec ce statut.
func IsStatus(err error, status int) bool {
	var be *Error
	return errors.As(err, &be) && be.Kind == KindStatus && be.Status == status
}

// IsUnauthorized couvre 401 et 403.
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized) || IsStatus(err, http.StatusForbidden)
}

// ServerMessage renvoie le message d'erreur fourni par le backend, ou "".
func ServerMessage(err error) string {
	var be *Error
	if errors.As(err, &be) && be.Kind == KindStatus {
		return be.Message
	}
	return ""
}
