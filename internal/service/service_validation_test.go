package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-journal-vault/internal/mock"
	"github.com/MKhiriev/go-journal-vault/internal/validators"
	"github.com/MKhiriev/go-journal-vault/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestWrappedKeyValidationService_RejectsBeforeStorage(t *testing.T) {
	noKDF := validWrappedKey()
	noKDF.KDF = 0

	badBase64 := validWrappedKey()
	badBase64.IV = "not base64!"

	emptyTag := validWrappedKey()
	emptyTag.Tag = ""

	tests := []struct {
		name    string
		call    func(svc WrappedKeyService) error
		wantErr error
	}{
		{
			name: "no owner",
			call: func(svc WrappedKeyService) error {
				_, err := svc.PutWrappedKey(context.Background(), 0, validWrappedKey(), 0)
				return err
			},
			wantErr: ErrValidationNoOwnerID,
		},
		{
			name: "negative version",
			call: func(svc WrappedKeyService) error {
				_, err := svc.PutWrappedKey(context.Background(), 7, validWrappedKey(), -1)
				return err
			},
			wantErr: ErrValidationNegativeVersion,
		},
		{
			name: "missing kdf",
			call: func(svc WrappedKeyService) error {
				_, err := svc.PutWrappedKey(context.Background(), 7, noKDF, 0)
				return err
			},
			wantErr: validators.ErrInvalidKDF,
		},
		{
			name: "bad encoding",
			call: func(svc WrappedKeyService) error {
				_, err := svc.PutWrappedKey(context.Background(), 7, badBase64, 0)
				return err
			},
			wantErr: validators.ErrInvalidEnvelope,
		},
		{
			name: "empty tag",
			call: func(svc WrappedKeyService) error {
				_, err := svc.PutWrappedKey(context.Background(), 7, emptyTag, 0)
				return err
			},
			wantErr: validators.ErrInvalidTag,
		},
		{
			name: "rotation without base version",
			call: func(svc WrappedKeyService) error {
				_, err := svc.RotateWrappedKey(context.Background(), 7, validWrappedKey(), 0, clientAuthHash)
				return err
			},
			wantErr: ErrValidationRotationNeedsBase,
		},
		{
			name: "rotation with malformed auth hash",
			call: func(svc WrappedKeyService) error {
				_, err := svc.RotateWrappedKey(context.Background(), 7, validWrappedKey(), 1, "short")
				return err
			},
			wantErr: validators.ErrInvalidAuthHash,
		},
		{
			name: "get without owner",
			call: func(svc WrappedKeyService) error {
				_, err := svc.GetWrappedKey(context.Background(), -3)
				return err
			},
			wantErr: ErrValidationNoOwnerID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := mock.NewMockWrappedKeyService(gomock.NewController(t))
			svc := NewWrappedKeyValidationService().Wrap(inner)

			assert.ErrorIs(t, tt.call(svc), tt.wantErr)
		})
	}
}

func TestRecordValidationService_RejectsBeforeStorage(t *testing.T) {
	valid := func() models.EncryptedRecord {
		return models.EncryptedRecord{
			ID:      "entry-1",
			OwnerID: 7,
			Fields:  map[string]json.RawMessage{"title": json.RawMessage(testEnvelopeJSON)},
		}
	}

	noOwner := valid()
	noOwner.OwnerID = 0

	badID := valid()
	badID.ID = "../etc/passwd"

	noFields := valid()
	noFields.Fields = nil

	plaintext := valid()
	plaintext.Fields["body"] = json.RawMessage(`"dear diary"`)

	tests := []struct {
		name    string
		record  models.EncryptedRecord
		wantErr error
	}{
		{name: "no owner", record: noOwner, wantErr: ErrValidationNoOwnerID},
		{name: "bad id", record: badID, wantErr: validators.ErrInvalidRecordID},
		{name: "no fields", record: noFields, wantErr: validators.ErrEmptyFields},
		{name: "plaintext field", record: plaintext, wantErr: validators.ErrInvalidEnvelope},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := mock.NewMockRecordService(gomock.NewController(t))
			svc := NewRecordValidationService().Wrap(inner)

			_, err := svc.SaveRecord(context.Background(), tt.record)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRecordValidationService_Keys(t *testing.T) {
	inner := mock.NewMockRecordService(gomock.NewController(t))
	svc := NewRecordValidationService().Wrap(inner)
	ctx := context.Background()

	_, err := svc.GetRecord(ctx, 7, "bad id")
	assert.ErrorIs(t, err, validators.ErrInvalidRecordID)

	assert.ErrorIs(t, svc.DeleteRecord(ctx, 0, "entry-1"), ErrValidationNoOwnerID)

	_, err = svc.ListRecordIDs(ctx, 0)
	assert.ErrorIs(t, err, ErrValidationNoOwnerID)

	inner.EXPECT().GetRecord(gomock.Any(), int64(7), "entry-1").Return(models.EncryptedRecord{ID: "entry-1"}, nil)
	got, err := svc.GetRecord(ctx, 7, "entry-1")
	assert.NoError(t, err)
	assert.Equal(t, "entry-1", got.ID)
}
