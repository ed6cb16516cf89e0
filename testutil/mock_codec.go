package testutil

import (
	"github.com/keepalleytrash/keepalleytrash/internal/session"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
)

type MockCodec struct {
	mock.Mock
}

func (m *MockCodec) Read(c echo.Context) (*session.Session, error) {
	args := m.Called(c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *MockCodec) Save(c echo.Context, s *session.Session) error {
	args := m.Called(c, s)
	return args.Error(0)
}

func (m *MockCodec) Destroy(c echo.Context) error {
	args := m.Called(c)
	return args.Error(0)
}
