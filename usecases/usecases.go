package usecases

import (
	"github.com/sixtosix/sixtosix-backend/repositories"
	"github.com/sixtosix/sixtosix-backend/usecases/executor_factory"
)

type Usecases struct {
	Repositories       repositories.Repositories
	transactionFactory executor_factory.TransactionFactory
	executorFactory    executor_factory.ExecutorFactory
}

func NewUsecases(repos repositories.Repositories) Usecases {
	factory := executor_factory.NewDbExecutorFactory(repos.ExecutorGetter)
	return Usecases{
		Repositories:       repos,
		transactionFactory: factory,
		executorFactory:    factory,
	}
}

func (usecases Usecases) NewAuditLogUsecase() AuditLogUsecase {
	return AuditLogUsecase{
		executorFactory: usecases.executorFactory,
		repository:      usecases.Repositories.CareDbRepository,
		userRepository:  usecases.Repositories.CareDbRepository,
	}
}

func (usecases Usecases) NewAnamnesisUsecase() AnamnesisUsecase {
	auditUsecase := usecases.NewAuditLogUsecase()
	return AnamnesisUsecase{
		transactionFactory: usecases.transactionFactory,
		executorFactory:    usecases.executorFactory,
		repository:         usecases.Repositories.CareDbRepository,
		patientRepository:  usecases.Repositories.CareDbRepository,
		userRepository:     usecases.Repositories.CareDbRepository,
		auditTrail:         &auditUsecase,
	}
}
