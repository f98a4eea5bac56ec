// Package engineerr declares the sentinel errors returned across package
// boundaries by the search, so callers can compare with errors.Is instead
// of matching on message text.
package engineerr

import "errors"

// ErrNoLegalMoves is returned by search.BestMove when the root position has
// no pseudo-legal moves to choose among -- the one user-visible failure
// mode the core recognizes (stalemate/checkmate, from the engine's point
// of view, since it has no check detection of its own).
var ErrNoLegalMoves = errors.New("corechess: no legal moves at root position")
