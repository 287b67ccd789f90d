package mocks

import (
	"context"

	"github.com/sixtosix/sixtosix-backend/repositories"

	"github.com/stretchr/testify/mock"
)

type ExecutorFactory struct {
	mock.Mock
}

func (factory *ExecutorFactory) NewExecutor() repositories.Executor {
	args := factory.Called()
	return args.Get(0).(repositories.Executor)
}

type TransactionFactory struct {
	mock.Mock
	Tx repositories.Transaction
}

// Transaction runs fn against the configured Tx, mirroring how the real
// factory would run it inside a database transaction.
func (factory *TransactionFactory) Transaction(
	ctx context.Context,
	fn func(tx repositories.Transaction) error,
) error {
	factory.Called(ctx)
	return fn(factory.Tx)
}
