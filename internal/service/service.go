package service

import (
	"fmt"

	"github.com/GlebRadaev/crewmart/internal/config"
	"github.com/GlebRadaev/crewmart/internal/notify"
	"github.com/GlebRadaev/crewmart/internal/pg"
	"github.com/GlebRadaev/crewmart/internal/repo"
	"github.com/GlebRadaev/crewmart/internal/service/accessservice"
	"github.com/GlebRadaev/crewmart/internal/service/applicationservice"
	"github.com/GlebRadaev/crewmart/internal/service/awardservice"
	"github.com/GlebRadaev/crewmart/internal/service/groupservice"
	"github.com/GlebRadaev/crewmart/internal/service/orderservice"
	"github.com/GlebRadaev/crewmart/internal/service/payoutservice"
	"github.com/GlebRadaev/crewmart/internal/service/reputationservice"
	"github.com/GlebRadaev/crewmart/internal/service/scanner"
	"github.com/GlebRadaev/crewmart/internal/service/workerservice"
)

type Services struct {
	AccessService      *accessservice.Service
	ApplicationService *applicationservice.Service
	AwardService       *awardservice.Service
	OrderService       *orderservice.Service
	PayoutService      *payoutservice.Service
	ReputationService  *reputationservice.Service
	WorkerService      *workerservice.Service
	GroupService       *groupservice.Service
	Scanner            *scanner.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager, notifier notify.Notifier) (*Services, error) {
	policy, err := awardservice.PolicyByName(cfg.AwardPolicy)
	if err != nil {
		return nil, fmt.Errorf("award policy: %w", err)
	}

	accessService := accessservice.New(repo.Workers)
	reputationService := reputationservice.New(repo.Workers, repo.Groups)
	payoutService := payoutservice.New(txManager, repo.Orders, repo.Roster, repo.Payouts, repo.Workers, notifier)
	awardService := awardservice.New(txManager, repo.Orders, repo.Applications, repo.Roster, repo.Workers, notifier, policy)
	applicationService := applicationservice.New(txManager, repo.Orders, repo.Applications, accessService, notifier)
	orderService := orderservice.New(orderservice.Deps{
		TXManager:    txManager,
		Repo:         repo.Orders,
		Roster:       repo.Roster,
		Applications: repo.Applications,
		Guard:        accessService,
		Awarder:      awardService,
		Ledger:       payoutService,
		Reputation:   reputationService,
		Notifier:     notifier,
	})
	workerService := workerservice.New(repo.Workers, repo.Groups, accessService, payoutService, notifier)
	groupService := groupservice.New(repo.Groups)
	scannerService := scanner.New(cfg, repo.Orders, repo.Roster, notifier)

	return &Services{
		AccessService:      accessService,
		ApplicationService: applicationService,
		AwardService:       awardService,
		OrderService:       orderService,
		PayoutService:      payoutService,
		ReputationService:  reputationService,
		WorkerService:      workerService,
		GroupService:       groupService,
		Scanner:            scannerService,
	}, nil
}
