package viewer

import (
	"context"

	"go.uber.org/zap"

	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/normalize"
	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/query"
)

// Viewer is everything the catalog needs to know about the caller.
type Viewer struct {
	UserID   string
	SafeOnly bool
	Tracked  normalize.IDSet
}

func Anonymous() Viewer {
	return Viewer{SafeOnly: true}
}

// Safety resolves the effective content safety: unrestricted only when the
// caller asked for it and the viewer is allowed to have it.
func (v Viewer) Safety(requested query.ContentSafety) query.ContentSafety {
	if v.SafeOnly {
		return query.Safe
	}
	return requested
}

type Resolver struct {
	store Store
	log   *zap.Logger
}

func NewResolver(store Store, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{store: store, log: log}
}

// Resolve looks the caller up. Store failures degrade to a safe viewer with
// nothing tracked rather than failing the request.
func (r *Resolver) Resolve(ctx context.Context, userID string) Viewer {
	if userID == "" || r.store == nil {
		return Anonymous()
	}
	v := Viewer{UserID: userID, SafeOnly: true}

	prefs, err := r.store.Preferences(ctx, userID)
	if err != nil {
		r.log.Warn("viewer preferences lookup failed", zap.String("user_id", userID), zap.Error(err))
	} else {
		v.SafeOnly = !prefs.NSFWAllowed
	}

	ids, err := r.store.TrackedIDs(ctx, userID)
	if err != nil {
		r.log.Warn("viewer tracked ids lookup failed", zap.String("user_id", userID), zap.Error(err))
	}
	v.Tracked = normalize.NewIDSet(ids)
	return v
}

// TrackedIDs returns the caller's tracked ids, never nil.
func (r *Resolver) TrackedIDs(ctx context.Context, userID string) ([]int, error) {
	if r.store == nil {
		return []int{}, nil
	}
	ids, err := r.store.TrackedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []int{}
	}
	return ids, nil
}
