package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-hotel-booking/internal/jwt"
	"github.com/sbilibin2017/gw-hotel-booking/internal/models"
	"github.com/sbilibin2017/gw-hotel-booking/internal/repositories"
	"github.com/sbilibin2017/gw-hotel-booking/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authMocks struct {
	reader *services.MockUserReader
	writer *services.MockUserWriter
	jwt    *services.MockJWTGenerator
	claims *services.MockClaimsParser
}

func newAuthService(t *testing.T) (*services.AuthService, authMocks) {
	ctrl := gomock.NewController(t)
	m := authMocks{
		reader: services.NewMockUserReader(ctrl),
		writer: services.NewMockUserWriter(ctrl),
		jwt:    services.NewMockJWTGenerator(ctrl),
		claims: services.NewMockClaimsParser(ctrl),
	}
	return services.NewAuthService(m.reader, m.writer, m.jwt, m.claims), m
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(m authMocks)
		wantToken string
		wantErr   error
	}{
		{
			name: "successful registration",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
				m.writer.EXPECT().
					Save(gomock.Any(), "alice", "Alice Liddell", gomock.Any(), false).
					DoAndReturn(func(_ context.Context, _, _, hash string, _ bool) (int64, error) {
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("pass123")))
						return 7, nil
					})
				m.jwt.EXPECT().Generate(gomock.Any(), int64(7)).Return("token123", nil)
			},
			wantToken: "token123",
		},
		{
			name: "user already exists",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(&models.UserDB{UserID: 1}, nil)
			},
			wantErr: services.ErrUserAlreadyExists,
		},
		{
			name: "duplicate on insert",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
				m.writer.EXPECT().Save(gomock.Any(), "alice", "Alice Liddell", gomock.Any(), false).
					Return(int64(0), repositories.ErrDuplicate)
			},
			wantErr: services.ErrUserAlreadyExists,
		},
		{
			name: "reader error",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
		{
			name: "writer error",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
				m.writer.EXPECT().Save(gomock.Any(), "alice", "Alice Liddell", gomock.Any(), false).
					Return(int64(0), errors.New("save error"))
			},
			wantErr: errors.New("save error"),
		},
		{
			name: "jwt error",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
				m.writer.EXPECT().Save(gomock.Any(), "alice", "Alice Liddell", gomock.Any(), false).Return(int64(7), nil)
				m.jwt.EXPECT().Generate(gomock.Any(), int64(7)).Return("", errors.New("jwt error"))
			},
			wantErr: errors.New("jwt error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			tt.setup(m)

			token, err := svc.Register(context.Background(), "alice", "pass123", "Alice Liddell")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.UserDB{UserID: 3, Username: "alice", PasswordHash: string(hashed)}

	tests := []struct {
		name      string
		password  string
		setup     func(m authMocks)
		wantToken string
		wantErr   error
	}{
		{
			name:     "successful login",
			password: "secret",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
				m.jwt.EXPECT().Generate(gomock.Any(), int64(3)).Return("token123", nil)
			},
			wantToken: "token123",
		},
		{
			name:     "user does not exist",
			password: "secret",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
			},
			wantErr: services.ErrUserDoesNotExist,
		},
		{
			name:     "wrong password",
			password: "wrong",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "reader error",
			password: "secret",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
		{
			name:     "jwt error",
			password: "secret",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
				m.jwt.EXPECT().Generate(gomock.Any(), int64(3)).Return("", errors.New("jwt error"))
			},
			wantErr: errors.New("jwt error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			tt.setup(m)

			token, err := svc.Login(context.Background(), "alice", tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	t.Run("stores a new hash", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.writer.EXPECT().UpdatePassword(gomock.Any(), int64(3), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, hash string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("new-secret")))
				return nil
			})

		assert.NoError(t, svc.ChangePassword(context.Background(), 3, "new-secret"))
	})

	t.Run("writer error", func(t *testing.T) {
		svc, m := newAuthService(t)
		dbErr := errors.New("db error")
		m.writer.EXPECT().UpdatePassword(gomock.Any(), int64(3), gomock.Any()).Return(dbErr)

		err := svc.ChangePassword(context.Background(), 3, "new-secret")
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestAuthService_VerifyToken(t *testing.T) {
	user := &models.UserDB{UserID: 3, Username: "alice"}

	tests := []struct {
		name     string
		setup    func(m authMocks)
		wantUser *models.UserDB
		wantErr  bool
	}{
		{
			name: "valid token",
			setup: func(m authMocks) {
				m.claims.EXPECT().GetClaims(gomock.Any(), "tok").Return(&jwt.Claims{UserID: 3}, nil)
				m.reader.EXPECT().GetByID(gomock.Any(), int64(3)).Return(user, nil)
			},
			wantUser: user,
		},
		{
			name: "rejected token",
			setup: func(m authMocks) {
				m.claims.EXPECT().GetClaims(gomock.Any(), "tok").Return(nil, errors.New("token is expired"))
			},
		},
		{
			name: "unknown user",
			setup: func(m authMocks) {
				m.claims.EXPECT().GetClaims(gomock.Any(), "tok").Return(&jwt.Claims{UserID: 3}, nil)
				m.reader.EXPECT().GetByID(gomock.Any(), int64(3)).Return(nil, nil)
			},
		},
		{
			name: "store error",
			setup: func(m authMocks) {
				m.claims.EXPECT().GetClaims(gomock.Any(), "tok").Return(&jwt.Claims{UserID: 3}, nil)
				m.reader.EXPECT().GetByID(gomock.Any(), int64(3)).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			tt.setup(m)

			got, err := svc.VerifyToken(context.Background(), "tok")
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, got)
		})
	}
}
