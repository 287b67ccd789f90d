package executor_factory

import (
	"context"

	"github.com/sixtosix/sixtosix-backend/repositories"
)

type TransactionFactory interface {
	Transaction(ctx context.Context, fn func(tx repositories.Transaction) error) error
}

type ExecutorFactory interface {
	NewExecutor() repositories.Executor
}

type DbExecutorFactory struct {
	executorGetter repositories.ExecutorGetter
}

func NewDbExecutorFactory(executorGetter repositories.ExecutorGetter) DbExecutorFactory {
	return DbExecutorFactory{
		executorGetter: executorGetter,
	}
}

func (factory DbExecutorFactory) Transaction(
	ctx context.Context,
	fn func(tx repositories.Transaction) error,
) error {
	return factory.executorGetter.Transaction(ctx, fn)
}

func (factory DbExecutorFactory) NewExecutor() repositories.Executor {
	return factory.executorGetter.GetExecutor()
}
