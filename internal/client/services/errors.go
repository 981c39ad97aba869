package services

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bankcli/internal/client/client"
	"github.com/dmitrijs2005/bankcli/internal/common"
)

// Messages shown to the user.
const (
	MsgLoginFailed        = "Login failed. Please check your email and password."
	MsgSessionRejected    = "Login failed: the server returned an unusable session."
	MsgCredentialsMissing = "Email and password are required"
	MsgRegisterFailed     = "Registration failed. Please try a different email."
	MsgDashboardFailed    = "Failed to load dashboard data."
	MsgNoAccount          = "No account available."
	MsgDestinationMissing = "Destination Account ID is required"
	MsgInvalidAmount      = "Please enter a valid transfer amount"
	MsgTooManyDecimals    = "Amounts support at most two decimal places"
	MsgTransferFailed     = "Failed to initiate transfer. Please verify the destination ID."
	MsgStatementFailed    = "Failed to generate statement. Please try again later."
	MsgProfileFailed      = "Failed to load profile."
)

// ErrSessionRejected is returned when login succeeded remotely but the
// issued credential could not be used locally.
var ErrSessionRejected = errors.New("issued credential rejected")

// Failure is an error with a message meant for the user.
type Failure struct {
	Message string
	Err     error
}

func (f *Failure) Error() string { return f.Message }

func (f *Failure) Unwrap() error { return f.Err }

// validation reports a problem found before any network call.
func validation(msg string, cause error) *Failure {
	if cause == nil {
		cause = common.ErrorValidation
	} else {
		cause = fmt.Errorf("%w: %w", common.ErrorValidation, cause)
	}
	return &Failure{Message: msg, Err: cause}
}

// backend maps a backend error, preferring the message the backend sent.
func backend(err error, fallback string) *Failure {
	return &Failure{Message: client.UserMessage(err, fallback), Err: err}
}
