// This file is part of Phosphene.
//
// Phosphene is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Phosphene is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Phosphene.  If not, see <https://www.gnu.org/licenses/>.

package logger_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/kelyard/phosphene/logger"
	"github.com/kelyard/phosphene/test"
)

func TestWrite(t *testing.T) {
	logger.Clear()

	// empty log produces no output
	b := &strings.Builder{}
	test.ExpectedFailure(t, logger.Write(b))
	test.Equate(t, b.String(), "")

	logger.Log("test", "this is a test")
	test.ExpectedSuccess(t, logger.Write(b))
	test.Equate(t, b.String(), "test: this is a test\n")
}

func TestRepeats(t *testing.T) {
	logger.Clear()

	// identical adjacent entries collapse into a single entry with a
	// repeat count
	logger.Log("test", "this is a test")
	logger.Log("test", "this is a test")

	b := &strings.Builder{}
	test.ExpectedSuccess(t, logger.Write(b))
	test.Equate(t, b.String(), "test: this is a test (repeat x2)\n")
}

func TestTail(t *testing.T) {
	logger.Clear()

	logger.Log("test", "one")
	logger.Log("test", "two")
	logger.Log("test", "three")

	b := &strings.Builder{}
	logger.Tail(b, 2)
	test.Equate(t, b.String(), "test: two\ntest: three\n")

	// tail longer than the log is capped
	b.Reset()
	logger.Tail(b, 100)
	test.Equate(t, b.String(), "test: one\ntest: two\ntest: three\n")
}

func TestConcurrentLogging(t *testing.T) {
	logger.Clear()

	// entries arrive from more than one goroutine. run with the race
	// detector for the full effect
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				logger.Logf("test", "goroutine %d entry %d", i, j)
			}
		}(i)
	}
	wg.Wait()

	b := &strings.Builder{}
	test.ExpectedSuccess(t, logger.Write(b))

	// no entries collapse. every detail string is distinct
	test.Equate(t, strings.Count(b.String(), "\n"), 100)
	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			if !strings.Contains(b.String(), fmt.Sprintf("goroutine %d entry %d", i, j)) {
				t.Errorf("missing entry for goroutine %d entry %d", i, j)
			}
		}
	}
}

func TestNewlineRemoval(t *testing.T) {
	logger.Clear()

	logger.Log("test", "a detail\nover two lines")

	b := &strings.Builder{}
	test.ExpectedSuccess(t, logger.Write(b))
	test.Equate(t, b.String(), "test: a detailover two lines\n")
}
