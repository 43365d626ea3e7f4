package export

import (
	"context"
	"errors"
	"iter"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/lunaris-space/lunaris-go/datasets"
)

func points(pts []datasets.Datapoint, trailing error) iter.Seq2[datasets.Datapoint, error] {
	return func(yield func(datasets.Datapoint, error) bool) {
		for _, p := range pts {
			if !yield(p, nil) {
				return
			}
		}
		if trailing != nil {
			yield(datasets.Datapoint{}, trailing)
		}
	}
}

func TestExport(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	collection := uuid.New()
	pts := []datasets.Datapoint{testPoint(uuid.New()), testPoint(uuid.New()), testPoint(uuid.New())}

	mock.ExpectBegin()
	for range pts {
		mock.ExpectExec(`INSERT INTO datapoints`).WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	written, err := NewExporter(db).Export(context.Background(), collection, points(pts, nil))
	require.NoError(t, err)
	require.Equal(t, int64(3), written)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportEmptySequence(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	written, err := NewExporter(db).Export(context.Background(), uuid.New(), points(nil, nil))
	require.NoError(t, err)
	require.Zero(t, written)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportSequenceError(t *testing.T) {
	db, _, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("page fetch failed")
	pts := []datasets.Datapoint{testPoint(uuid.New())}

	written, err := NewExporter(db).Export(context.Background(), uuid.New(), points(pts, boom))
	require.ErrorIs(t, err, boom)
	// the buffered point never reached a committed batch
	require.Zero(t, written)
}

func TestExportInsertErrorRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	dbErr := errors.New("disk full")
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO datapoints`).WillReturnError(dbErr)
	mock.ExpectRollback()

	written, err := NewExporter(db).Export(context.Background(), uuid.New(),
		points([]datasets.Datapoint{testPoint(uuid.New())}, nil))
	require.ErrorIs(t, err, dbErr)
	require.Zero(t, written)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportBatches(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	total := batchSize + 2
	pts := make([]datasets.Datapoint, total)
	for i := range pts {
		pts[i] = testPoint(uuid.New())
	}

	mock.ExpectBegin()
	for i := 0; i < batchSize; i++ {
		mock.ExpectExec(`INSERT INTO datapoints`).WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()
	mock.ExpectBegin()
	for i := 0; i < 2; i++ {
		mock.ExpectExec(`INSERT INTO datapoints`).WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	written, err := NewExporter(db).Export(context.Background(), uuid.New(), points(pts, nil))
	require.NoError(t, err)
	require.Equal(t, int64(total), written)
	require.NoError(t, mock.ExpectationsWereMet())
}
