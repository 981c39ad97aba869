package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/bankcli/internal/client/client"
	"github.com/dmitrijs2005/bankcli/internal/client/models"
	"github.com/dmitrijs2005/bankcli/internal/logging"
	"github.com/dmitrijs2005/bankcli/internal/money"
)

// TransferService submits transfers.
type TransferService interface {
	// Submit validates the form input, sends the transfer and returns the
	// success message. Validation failures never reach the backend.
	Submit(ctx context.Context, from uuid.UUID, toIdentifier, amount string) (string, error)
}

type transferService struct {
	client client.Client
	log    logging.Logger
}

func NewTransferService(c client.Client, log logging.Logger) TransferService {
	return &transferService{
		client: c,
		log:    log.With(logging.FieldComponent, logging.ComponentTransfer),
	}
}

func (s *transferService) Submit(ctx context.Context, from uuid.UUID, toIdentifier, amount string) (string, error) {
	if from == uuid.Nil {
		return "", validation(MsgNoAccount, nil)
	}

	to := strings.TrimSpace(toIdentifier)
	if to == "" {
		return "", validation(MsgDestinationMissing, nil)
	}

	minor, err := money.ParseTransferAmount(amount)
	if err != nil {
		if errors.Is(err, money.ErrTooManyDecimals) {
			return "", validation(MsgTooManyDecimals, err)
		}
		return "", validation(MsgInvalidAmount, err)
	}

	req := models.TransferRequest{FromAccountID: from, ToIdentifier: to, Amount: minor}
	if err := s.client.Transfer(ctx, req); err != nil {
		s.log.Warn(ctx, "transfer rejected", logging.FieldAccountID, from.String(), logging.FieldError, err)
		return "", backend(err, MsgTransferFailed)
	}

	s.log.Info(ctx, "transfer submitted", logging.FieldAccountID, from.String())
	return fmt.Sprintf("Successfully transferred %s.", money.Format(minor)), nil
}
