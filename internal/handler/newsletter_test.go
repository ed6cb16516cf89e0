package handler

import (
	"net/url"
	"testing"

	"github.com/keepalleytrash/keepalleytrash/internal/service"
	"github.com/keepalleytrash/keepalleytrash/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewsletterHandler_PostSubscribe(t *testing.T) {
	t.Run("success - new subscriber is thanked", func(t *testing.T) {
		// arrange
		e := newTestEcho()
		mockService := new(testutil.MockNewsletterService)
		mockService.On("Subscribe", mock.Anything, "sub@example.com").
			Return(&service.SubscribeResult{Email: "sub@example.com"}, nil)

		form := url.Values{}
		form.Set("email", "sub@example.com")
		c, rec := newFormContext(e, "/subscribe", form)
		h := NewNewsletterHandler(mockService)

		// act
		err := h.PostSubscribe(c)

		// assert
		assert.NoError(t, err)
		assert.Contains(t, rec.Body.String(), "Thanks for subscribing")
	})
	t.Run("success - repeat subscriber sees already subscribed", func(t *testing.T) {
		// arrange
		e := newTestEcho()
		mockService := new(testutil.MockNewsletterService)
		mockService.On("Subscribe", mock.Anything, "sub@example.com").
			Return(&service.SubscribeResult{Email: "sub@example.com", AlreadySubscribed: true}, nil)

		form := url.Values{}
		form.Set("email", "sub@example.com")
		c, rec := newFormContext(e, "/subscribe", form)
		h := NewNewsletterHandler(mockService)

		// act
		err := h.PostSubscribe(c)

		// assert
		assert.NoError(t, err)
		assert.Contains(t, rec.Body.String(), "already subscribed")
	})
	t.Run("failure - invalid email never reaches the service", func(t *testing.T) {
		// arrange
		e := newTestEcho()
		mockService := new(testutil.MockNewsletterService)

		form := url.Values{}
		form.Set("email", "not-an-email")
		c, rec := newFormContext(e, "/subscribe", form)
		h := NewNewsletterHandler(mockService)

		// act
		err := h.PostSubscribe(c)

		// assert
		assert.NoError(t, err)
		assert.Contains(t, rec.Body.String(), "Please enter a valid email")
		mockService.AssertNotCalled(t, "Subscribe", mock.Anything, mock.Anything)
	})
}
