package store

import (
	"context"
	"fmt"

	"github.com/abhisek/coursepilot/ent"
	"github.com/abhisek/coursepilot/ent/sessionsnapshot"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Save(ctx context.Context, sessionID string, data []byte) error {
	_, err := r.client.SessionSnapshot.Create().
		SetSessionID(sessionID).
		SetData(string(data)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Load(ctx context.Context, sessionID string) (*SessionRecord, error) {
	s, err := r.client.SessionSnapshot.Query().
		Where(sessionsnapshot.SessionID(sessionID)).
		Order(ent.Desc(sessionsnapshot.FieldTimestamp), ent.Desc(sessionsnapshot.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}
	return recordFromEnt(s), nil
}

func (r *snapshotRepo) LoadLatest(ctx context.Context) (*SessionRecord, error) {
	s, err := r.client.SessionSnapshot.Query().
		Order(ent.Desc(sessionsnapshot.FieldTimestamp), ent.Desc(sessionsnapshot.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load latest session: %w", err)
	}
	return recordFromEnt(s), nil
}

func (r *snapshotRepo) Sessions(ctx context.Context) ([]SessionRecord, error) {
	rows, err := r.client.SessionSnapshot.Query().
		Order(ent.Desc(sessionsnapshot.FieldTimestamp), ent.Desc(sessionsnapshot.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	seen := make(map[string]bool)
	var out []SessionRecord
	for _, s := range rows {
		if seen[s.SessionID] {
			continue
		}
		seen[s.SessionID] = true
		out = append(out, *recordFromEnt(s))
	}
	return out, nil
}

func (r *snapshotRepo) Prune(ctx context.Context) error {
	latest, err := r.Sessions(ctx)
	if err != nil {
		return err
	}

	keep := make(map[string]int64, len(latest))
	for _, rec := range latest {
		keep[rec.SessionID] = rec.Timestamp.UnixNano()
	}

	rows, err := r.client.SessionSnapshot.Query().All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	for _, s := range rows {
		if s.Timestamp.UnixNano() < keep[s.SessionID] {
			if err := r.client.SessionSnapshot.DeleteOne(s).Exec(ctx); err != nil {
				return fmt.Errorf("prune snapshot %d: %w", s.ID, err)
			}
		}
	}
	return nil
}

func (r *snapshotRepo) Delete(ctx context.Context, sessionID string) error {
	_, err := r.client.SessionSnapshot.Delete().
		Where(sessionsnapshot.SessionID(sessionID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete session %s: %w", sessionID, err)
	}
	return nil
}

func recordFromEnt(s *ent.SessionSnapshot) *SessionRecord {
	return &SessionRecord{
		SessionID: s.SessionID,
		Timestamp: s.Timestamp,
		Data:      []byte(s.Data),
	}
}
