package service

import (
	"context"
	"errors"
	"testing"

	"github.com/kaminoclone/cobranca/internal/domain"
	"github.com/kaminoclone/cobranca/mocks"
	"github.com/kaminoclone/cobranca/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListAudit_Limits(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"default", 0, DefaultAuditLimit},
		{"negative", -3, DefaultAuditLimit},
		{"within bounds", 20, 20},
		{"capped", 5000, MaxAuditLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockAuditRepository(t)
			svc := NewAuditService(repo, logger.NewNop())

			repo.EXPECT().
				ListAudit(mock.Anything, tenantID, tt.wantLimit).
				Return([]domain.AuditEntry{{ID: "a"}}, nil).
				Once()

			entries, err := svc.ListAudit(context.Background(), tenantID, tt.limit)

			require.NoError(t, err)
			assert.Len(t, entries, 1)
		})
	}
}

func TestListAudit_Errors(t *testing.T) {
	repo := mocks.NewMockAuditRepository(t)
	svc := NewAuditService(repo, logger.NewNop())
	dbErr := errors.New("database error")

	_, err := svc.ListAudit(context.Background(), "", 10)
	assert.ErrorIs(t, err, domain.ErrTenantRequired)

	repo.EXPECT().ListAudit(mock.Anything, tenantID, 10).Return(nil, dbErr).Once()
	_, err = svc.ListAudit(context.Background(), tenantID, 10)
	assert.ErrorIs(t, err, dbErr)
}
