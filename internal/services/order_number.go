package services

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"gorm.io/gorm"
)

const orderSeqWidth = 3

// nextOrderNumber builds the next order number for the current month, in the
// form <YY><MM><NNN>. It inspects the highest existing number under the period
// prefix and increments its suffix; the first order of a month gets 001.
//
// If the lookup itself fails, a timestamp-derived suffix is used so order
// creation is never blocked by numbering. That fallback sacrifices strict
// sequentiality; a collision with an existing number is rejected by the unique
// constraint on order_no and surfaced as a retryable failure.
//
// The suffix width also caps the scheme at 999 orders per month: number 1000
// widens the suffix, the lexicographic latest-lookup keeps returning 999, and
// further creates that month fail with ErrDuplicateOrderNumber until the
// period rolls over.
func (s *orderService) nextOrderNumber(now time.Time) string {
	prefix := now.Format("0601") // YYMM

	latest, err := s.orderRepo.GetLatestByPrefix(prefix)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Sprintf("%s%0*d", prefix, orderSeqWidth, 1)
		}
		log.Printf("order number lookup failed, using timestamp fallback: %v", err)
		millis := strconv.FormatInt(time.Now().UnixMilli(), 10)
		return prefix + millis[len(millis)-orderSeqWidth:]
	}

	sequence := 1
	if len(latest.OrderNo) > orderSeqWidth {
		if last, err := strconv.Atoi(latest.OrderNo[len(latest.OrderNo)-orderSeqWidth:]); err == nil {
			sequence = last + 1
		}
	}

	return fmt.Sprintf("%s%0*d", prefix, orderSeqWidth, sequence)
}
