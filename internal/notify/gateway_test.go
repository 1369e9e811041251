package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/crewmart/pkg/clients"
)

func newGateway(t *testing.T) (*GatewayClient, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	client := clients.NewMockHTTPClientI(ctrl)
	gateway := NewGatewayClient("http://localhost:8081", client)
	gateway.retryInterval = 0
	return gateway, client
}

func TestGatewayClient_Send(t *testing.T) {
	const url = "http://localhost:8081/api/messages"

	tests := []struct {
		name        string
		prepareMock func(client *clients.MockHTTPClientI)
		wantErr     bool
	}{
		{
			name: "delivered",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Post(gomock.Any(), url, gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, headers http.Header, body []byte) (int, []byte, error) {
						var msg Message
						require.NoError(t, json.Unmarshal(body, &msg))
						assert.Equal(t, Message{Identity: 42, Text: "hello"}, msg)
						assert.Equal(t, "application/json", headers.Get("Content-Type"))
						return http.StatusAccepted, nil, nil
					})
			},
		},
		{
			name: "retries transport failure",
			prepareMock: func(client *clients.MockHTTPClientI) {
				gomock.InOrder(
					client.EXPECT().Post(gomock.Any(), url, gomock.Any(), gomock.Any()).Return(0, nil, errors.New("connection refused")),
					client.EXPECT().Post(gomock.Any(), url, gomock.Any(), gomock.Any()).Return(http.StatusOK, nil, nil),
				)
			},
		},
		{
			name: "gives up after server errors",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Post(gomock.Any(), url, gomock.Any(), gomock.Any()).Return(http.StatusBadGateway, nil, nil).Times(maxRetries)
			},
			wantErr: true,
		},
		{
			name: "client error is final",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Post(gomock.Any(), url, gomock.Any(), gomock.Any()).Return(http.StatusNotFound, nil, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway, client := newGateway(t)
			tt.prepareMock(client)

			err := gateway.Send(context.Background(), 42, "hello")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGatewayClient_SendCanceled(t *testing.T) {
	gateway, _ := newGateway(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := gateway.Send(ctx, 42, "hello")
	assert.ErrorIs(t, err, context.Canceled)
}
