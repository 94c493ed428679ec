package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"courseplatform-backend/internal/domains/category"
	"courseplatform-backend/internal/domains/course/model"
)

func TestClassifyPublishError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "duplicate key maps to duplicate course",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "courses_pkey"},
			want: model.ErrDuplicateCourse,
		},
		{
			name: "foreign key violation maps to missing category",
			err:  &pgconn.PgError{Code: "23503", ConstraintName: "courses_category_id_fkey"},
			want: category.ErrCategoryNotFound,
		},
		{
			name: "wrapped foreign key violation still classifies",
			err:  fmt.Errorf("exec insert: %w", &pgconn.PgError{Code: "23503"}),
			want: category.ErrCategoryNotFound,
		},
		{
			name: "other constraint codes map to publish failure",
			err:  &pgconn.PgError{Code: "23502"},
			want: model.ErrPublishFailed,
		},
		{
			name: "plain errors map to publish failure",
			err:  errors.New("connection reset"),
			want: model.ErrPublishFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, classifyPublishError(tt.err), tt.want)
		})
	}
}
