package keylock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type LockerTestSuite struct {
	suite.Suite
	locker *Locker
}

func (s *LockerTestSuite) SetupTest() {
	s.locker = New()
}

func TestLockerTestSuite(t *testing.T) {
	suite.Run(t, new(LockerTestSuite))
}

func (s *LockerTestSuite) TestSameKeyIsExclusive() {
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		inside  int
		maxSeen int
	)

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := s.locker.Lock("ABCD")
			defer unlock()

			mu.Lock()
			inside++
			if inside > maxSeen {
				maxSeen = inside
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inside--
			mu.Unlock()
		}()
	}
	wg.Wait()

	s.Equal(1, maxSeen)
	s.Equal(0, s.locker.Len())
}

func (s *LockerTestSuite) TestDifferentKeysDoNotBlock() {
	unlockA := s.locker.Lock("AAAA")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := s.locker.Lock("BBBB")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("lock on a different key blocked")
	}
}

func (s *LockerTestSuite) TestUnlockTwiceIsSafe() {
	unlock := s.locker.Lock("AAAA")
	unlock()
	unlock()

	s.Equal(0, s.locker.Len())
}
