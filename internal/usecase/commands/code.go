package commands

import (
	"context"
	"log/slog"

	"code-lookup/internal/domain/code"
	reqdto "code-lookup/internal/handler/dto/request"
	"code-lookup/internal/infra"
	"code-lookup/internal/pkg/errs"
	"code-lookup/internal/usecase/shared"
)

var (
	ErrCodeAlreadyExists       = errs.Mark(errs.New("code already exists"), errs.ErrConflict)
	ErrDatabaseOperationFailed = errs.ErrDatabaseOperationFailed
)

type CodeCommands interface {
	AddCode(ctx context.Context, req reqdto.AddCodeRequest) error
	DeleteCode(ctx context.Context, id int64) error
}

type codeCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCodeCommands(uow shared.UnitOfWork) CodeCommands {
	return &codeCommandsImpl{
		uow: uow,
	}
}

func (c *codeCommandsImpl) AddCode(ctx context.Context, req reqdto.AddCodeRequest) error {
	rec, err := code.NewRecord(req.Code, req.Message)
	if err != nil {
		return err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Codes().Create(ctx, tx.DB(), rec)
		if err != nil {
			return err
		}
		slog.Info("code added", "id", created.ID(), "code", created.Code().String())
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return errs.Wrap(ErrCodeAlreadyExists, rec.Code().String())
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// DeleteCode succeeds whether or not a record with id exists.
func (c *codeCommandsImpl) DeleteCode(ctx context.Context, id int64) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		removed, err := tx.Codes().Delete(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if removed {
			slog.Info("code deleted", "id", id)
		}
		return nil
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
