package repo

import (
	"github.com/GlebRadaev/crewmart/internal/pg"
	applicationrepo "github.com/GlebRadaev/crewmart/internal/repo/application-repo"
	grouprepo "github.com/GlebRadaev/crewmart/internal/repo/group-repo"
	orderrepo "github.com/GlebRadaev/crewmart/internal/repo/order-repo"
	payoutrepo "github.com/GlebRadaev/crewmart/internal/repo/payout-repo"
	rosterrepo "github.com/GlebRadaev/crewmart/internal/repo/roster-repo"
	workerrepo "github.com/GlebRadaev/crewmart/internal/repo/worker-repo"
)

// Repositories are concrete: each service declares the narrow slice of
// a repository it consumes.
type Repositories struct {
	Workers      *workerrepo.Repository
	Groups       *grouprepo.Repository
	Orders       *orderrepo.Repository
	Applications *applicationrepo.Repository
	Roster       *rosterrepo.Repository
	Payouts      *payoutrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		Workers:      workerrepo.New(conn),
		Groups:       grouprepo.New(conn),
		Orders:       orderrepo.New(conn, txManager),
		Applications: applicationrepo.New(conn),
		Roster:       rosterrepo.New(conn),
		Payouts:      payoutrepo.New(conn),
	}
}
