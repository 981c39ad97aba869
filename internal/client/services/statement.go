package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/bankcli/internal/client/client"
	"github.com/dmitrijs2005/bankcli/internal/client/models"
	"github.com/dmitrijs2005/bankcli/internal/client/txview"
	"github.com/dmitrijs2005/bankcli/internal/logging"
)

// Statement is a generated statement with its transactions normalized for
// display.
type Statement struct {
	models.Statement
	Rows []txview.Display
}

// StatementService generates account statements.
type StatementService interface {
	Generate(ctx context.Context, accountID uuid.UUID) (*Statement, error)
}

type statementService struct {
	client client.Client
	log    logging.Logger
}

func NewStatementService(c client.Client, log logging.Logger) StatementService {
	return &statementService{
		client: c,
		log:    log.With(logging.FieldComponent, logging.ComponentStatement),
	}
}

func (s *statementService) Generate(ctx context.Context, accountID uuid.UUID) (*Statement, error) {
	if accountID == uuid.Nil {
		return nil, validation(MsgNoAccount, nil)
	}

	st, err := s.client.Statement(ctx, accountID)
	if err != nil {
		s.log.Warn(ctx, "statement generation failed", logging.FieldAccountID, accountID.String(), logging.FieldError, err)
		return nil, &Failure{Message: MsgStatementFailed, Err: err}
	}

	return &Statement{Statement: *st, Rows: txview.NormalizeAllIn(st.Transactions, st.Currency)}, nil
}
