// File: services/booking/reference.go
package booking

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	bookingRepo "hotelbot/database/repository/booking"
	"hotelbot/utils"

	"go.uber.org/zap"
)

// ReferenceGenerator produces booking references in the format
// HBK-YYYY-XXXXX, for example HBK-2026-00001. Sequence numbers are scoped to
// a calendar day and strictly increasing within it.
//
// Uniqueness is process-local: the counter lives in memory and is seeded on
// startup from the count of bookings already created today, so a restart
// continues after the last issued reference. Running multiple instances
// against one database would duplicate references.
type ReferenceGenerator struct {
	counter   atomic.Int64
	resetDate atomic.Value // string, formatted as 2006-01-02
	mu        sync.Mutex

	now func() time.Time
}

// NewReferenceGenerator builds a generator seeded from the repository's count
// of bookings created since the start of the current day. A nil repository
// starts the sequence at zero.
func NewReferenceGenerator(repo bookingRepo.BookingRepository) *ReferenceGenerator {
	g := &ReferenceGenerator{now: time.Now}
	g.resetDate.Store(g.today())

	if repo != nil {
		startOfDay := g.startOfDay()
		n, err := repo.CountCreatedSince(startOfDay)
		if err != nil {
			utils.GetLogger().Warn("reference generator: failed to count today's bookings, starting at zero",
				zap.Error(err))
		} else {
			g.counter.Store(n)
		}
	}
	return g
}

// Next returns a fresh booking reference. It never fails.
//
// The day rollover uses a double-checked reset: the cheap date comparison
// runs lock-free, and a thread that sees a new day re-checks under the lock
// before resetting, so exactly one thread performs the reset and no sequence
// number from the old day is issued after it completes.
func (g *ReferenceGenerator) Next() string {
	today := g.today()
	if g.resetDate.Load().(string) != today {
		g.mu.Lock()
		if g.resetDate.Load().(string) != today {
			g.counter.Store(0)
			g.resetDate.Store(today)
		}
		g.mu.Unlock()
	}

	sequence := g.counter.Add(1)
	return fmt.Sprintf("HBK-%d-%05d", g.now().Year(), sequence)
}

func (g *ReferenceGenerator) today() string {
	return g.now().Format("2006-01-02")
}

func (g *ReferenceGenerator) startOfDay() time.Time {
	now := g.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
