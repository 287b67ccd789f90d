package executor_factory

import (
	"context"

	"github.com/sixtosix/sixtosix-backend/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
)

type ExecutorFactoryStub struct {
	Mock pgxmock.PgxPoolIface
}

func NewExecutorFactoryStub() ExecutorFactoryStub {
	pool, _ := pgxmock.NewPool()

	return ExecutorFactoryStub{
		Mock: pool,
	}
}

type PgExecutorStub struct {
	pgxmock.PgxPoolIface
}

func (stub ExecutorFactoryStub) NewExecutor() repositories.Executor {
	return PgExecutorStub{
		stub.Mock,
	}
}

func (stub ExecutorFactoryStub) Transaction(
	ctx context.Context,
	fn func(tx repositories.Transaction) error,
) error {
	return fn(PgTransactionStub{PgExecutorStub{stub.Mock}})
}

type PgTransactionStub struct {
	PgExecutorStub
}

func (stub PgTransactionStub) RawTx() pgx.Tx {
	// pgxmock drives the Exec/Query surface; nothing in tests reaches the raw tx
	return nil
}
