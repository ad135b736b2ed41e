package usecase

import (
	"context"

	"studyplan/internal/modules/remote/dto"
	remotein "studyplan/internal/modules/remote/port/in"
	"studyplan/internal/modules/remote/service"
)

type Interactor struct {
	svc *service.SyncService
}

func NewInteractor(svc *service.SyncService) remotein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Push(ctx context.Context) ([]dto.SyncResult, error) {
	counts, err := i.svc.Push(ctx)
	if err != nil {
		return nil, err
	}
	return toResults(counts), nil
}

func (i *Interactor) Pull(ctx context.Context) ([]dto.SyncResult, error) {
	counts, err := i.svc.Pull(ctx)
	if err != nil {
		return nil, err
	}
	return toResults(counts), nil
}

func (i *Interactor) Status(ctx context.Context) (dto.Status, error) {
	status := dto.Status{Enabled: i.svc.Enabled(), Collections: []dto.CollectionStatus{}}
	for _, c := range i.svc.Counts(ctx) {
		entry := dto.CollectionStatus{Collection: c.Name, Local: c.Local, Remote: c.Remote}
		if c.Err != nil {
			entry.Error = c.Err.Error()
		}
		entry.InSync = status.Enabled && c.Err == nil && c.Local == c.Remote
		status.Collections = append(status.Collections, entry)
	}
	return status, nil
}

func toResults(counts []service.Count) []dto.SyncResult {
	out := make([]dto.SyncResult, 0, len(counts))
	for _, c := range counts {
		out = append(out, dto.SyncResult{Collection: c.Name, Records: c.Records})
	}
	return out
}
