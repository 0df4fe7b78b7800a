package firestore

import (
	"context"
	"log/slog"
	"time"

	"pawtag/internal/domain/entity"
	"pawtag/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// reportDocument is the Firestore shape of a lost-pet report. The
// serverTimestamp tags make the store assign CreatedAt and FoundAtTime.
type reportDocument struct {
	PetID     string    `firestore:"petId"`
	OwnerID   string    `firestore:"userId"`
	PetName   string    `firestore:"petName"`
	PetType   string    `firestore:"petType"`
	Location  geoPoint  `firestore:"location"`
	Status    string    `firestore:"status"`
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp"`

	FoundBy      string     `firestore:"foundBy,omitempty"`
	FoundByPhone string     `firestore:"foundByPhone,omitempty"`
	FoundAt      *geoPoint  `firestore:"foundAt,omitempty"`
	FoundAtTime  *time.Time `firestore:"foundAtTime,omitempty"`
}

func (d *reportDocument) toEntity(id string) *entity.LostPetReport {
	return &entity.LostPetReport{
		ID:           id,
		PetID:        d.PetID,
		OwnerID:      d.OwnerID,
		PetName:      d.PetName,
		PetType:      d.PetType,
		Location:     entity.Coordinates{Latitude: d.Location.Latitude, Longitude: d.Location.Longitude},
		Status:       entity.ReportStatus(d.Status),
		CreatedAt:    d.CreatedAt,
		FoundBy:      d.FoundBy,
		FoundByPhone: d.FoundByPhone,
		FoundAt:      d.FoundAt.toCoordinates(),
		FoundAtTime:  d.FoundAtTime,
	}
}

type reportRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewReportRepository creates a Firestore-backed report repository.
func NewReportRepository(client *firestore.Client, logger *slog.Logger) repository.ReportRepository {
	return &reportRepository{
		client: client,
		logger: logger,
	}
}

func (repo *reportRepository) CreateReport(ctx context.Context, report *entity.LostPetReport) error {
	doc := &reportDocument{
		PetID:   report.PetID,
		OwnerID: report.OwnerID,
		PetName: report.PetName,
		PetType: report.PetType,
		Location: geoPoint{
			Latitude:  report.Location.Latitude,
			Longitude: report.Location.Longitude,
		},
		Status: string(report.Status),
	}

	ref, _, err := repo.client.Collection(reportsCollection).Add(ctx, doc)
	if err != nil {
		return errors.Wrap(err, "create report")
	}

	report.ID = ref.ID

	return nil
}

func (repo *reportRepository) FindActiveReportByPet(ctx context.Context, petID string) (*entity.LostPetReport, error) {
	iter := repo.client.Collection(reportsCollection).
		Where("petId", "==", petID).
		Where("status", "==", string(entity.ReportStatusActive)).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, repository.ErrReportNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "query active report")
	}

	var doc reportDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "decode report document")
	}

	return doc.toEntity(snap.Ref.ID), nil
}

func (repo *reportRepository) ResolveReport(ctx context.Context, id string, resolution *entity.ReportResolution) error {
	_, err := repo.client.Collection(reportsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(entity.ReportStatusFound)},
		{Path: "foundBy", Value: resolution.FoundBy},
		{Path: "foundByPhone", Value: resolution.FoundByPhone},
		{Path: "foundAt", Value: &geoPoint{
			Latitude:  resolution.FoundAt.Latitude,
			Longitude: resolution.FoundAt.Longitude,
		}},
		{Path: "foundAtTime", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrReportNotFound
		}

		return errors.Wrap(err, "resolve report")
	}

	return nil
}

func (repo *reportRepository) WatchActiveReports(ctx context.Context) (<-chan []*entity.LostPetReport, error) {
	query := repo.client.Collection(reportsCollection).
		Where("status", "==", string(entity.ReportStatusActive))

	out := make(chan []*entity.LostPetReport, 1)
	go func() {
		defer close(out)

		snapshots := query.Snapshots(ctx)
		defer snapshots.Stop()

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					repo.logger.Error("report snapshot stream failed", slog.Any("error", err))
				}

				return
			}

			reports, err := decodeReportSnapshot(snap)
			if err != nil {
				repo.logger.Error("decode report snapshot failed", slog.Any("error", err))

				continue
			}

			publishLatest(ctx, out, reports)
		}
	}()

	return out, nil
}

func decodeReportSnapshot(snap *firestore.QuerySnapshot) ([]*entity.LostPetReport, error) {
	docs, err := snap.Documents.GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "read report snapshot")
	}

	reports := make([]*entity.LostPetReport, 0, len(docs))
	for _, d := range docs {
		var doc reportDocument
		if err := d.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "decode report document")
		}
		reports = append(reports, doc.toEntity(d.Ref.ID))
	}

	return reports, nil
}
