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

package curated_test

import (
	"errors"
	"testing"

	"github.com/kelyard/phosphene/curated"
	"github.com/kelyard/phosphene/test"
)

const testError = "test error: %s"
const wrapError = "wrap: %v"

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, "detail")
	test.ExpectedSuccess(t, curated.IsAny(e))
	test.ExpectedSuccess(t, curated.Is(e, testError))
	test.ExpectedFailure(t, curated.Is(e, wrapError))

	// plain errors are never curated
	p := errors.New("plain")
	test.ExpectedFailure(t, curated.IsAny(p))
	test.ExpectedFailure(t, curated.Is(p, testError))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testError, "detail")
	f := curated.Errorf(wrapError, e)

	// Is() only matches the outermost pattern
	test.ExpectedFailure(t, curated.Is(f, testError))
	test.ExpectedSuccess(t, curated.Is(f, wrapError))

	// Has() matches anywhere in the chain
	test.ExpectedSuccess(t, curated.Has(f, testError))
	test.ExpectedSuccess(t, curated.Has(f, wrapError))
}

func TestDeduplication(t *testing.T) {
	e := curated.Errorf("glow: not yet implemented")
	f := curated.Errorf("glow: %v", e)

	// the duplicated "glow" part should appear only once in the message
	test.Equate(t, f.Error(), "glow: not yet implemented")
}
