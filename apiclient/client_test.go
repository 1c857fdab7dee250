package apiclient_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remote-input/hidinject/apiclient"
	"github.com/remote-input/hidinject/apitypes"
)

func TestClientRequests(t *testing.T) {
	type testCase struct {
		name        string
		response    string
		call        func(c *apiclient.Client) (any, error)
		wantPath    string
		wantPayload string
		want        any
	}
	cases := []testCase{
		{
			name:     "ping",
			response: `{"server":"VIIPER","version":"1.0.0"}`,
			call:     func(c *apiclient.Client) (any, error) { return c.Ping(context.Background()) },
			wantPath: "ping",
			want:     &apitypes.PingResponse{Server: "VIIPER", Version: "1.0.0"},
		},
		{
			name:     "bus create auto id",
			response: `{"busId":1}`,
			call:     func(c *apiclient.Client) (any, error) { return c.BusCreate(context.Background(), 0) },
			wantPath: "bus/create",
			want:     &apitypes.BusCreateResponse{BusID: 1},
		},
		{
			name:        "bus create explicit id",
			response:    `{"busId":7}`,
			call:        func(c *apiclient.Client) (any, error) { return c.BusCreate(context.Background(), 7) },
			wantPath:    "bus/create",
			wantPayload: "7",
			want:        &apitypes.BusCreateResponse{BusID: 7},
		},
		{
			name:        "device add",
			response:    `{"busId":7,"devId":"1","vid":"0x1234","pid":"0x5678","type":"keyboard"}`,
			call:        func(c *apiclient.Client) (any, error) { return c.DeviceAdd(context.Background(), 7, "keyboard") },
			wantPath:    "bus/7/add",
			wantPayload: `{"type":"keyboard"}`,
			want:        &apitypes.Device{BusID: 7, DevId: "1", Vid: "0x1234", Pid: "0x5678", Type: "keyboard"},
		},
		{
			name:        "device remove",
			response:    `{"busId":7,"devId":"1"}`,
			call:        func(c *apiclient.Client) (any, error) { return c.DeviceRemove(context.Background(), 7, "1") },
			wantPath:    "bus/7/remove",
			wantPayload: "1",
			want:        &apitypes.DeviceRemoveResponse{BusID: 7, DevId: "1"},
		},
		{
			name:        "bus remove",
			response:    `{"busId":7}`,
			call:        func(c *apiclient.Client) (any, error) { return c.BusRemove(context.Background(), 7) },
			wantPath:    "bus/remove",
			wantPayload: "7",
			want:        &apitypes.BusRemoveResponse{BusID: 7},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := startFakeServer(t, "", reply(tc.response))
			got, err := tc.call(apiclient.New(srv.addr()))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			reqs := srv.seen()
			require.Len(t, reqs, 1)
			assert.Equal(t, tc.wantPath, reqs[0].path)
			assert.Equal(t, tc.wantPayload, reqs[0].payload)
		})
	}
}

func TestClientProblemResponse(t *testing.T) {
	srv := startFakeServer(t, "", reply(`{"status":404,"title":"Not Found","detail":"bus 9 not found"}`))
	_, err := apiclient.New(srv.addr()).DeviceAdd(context.Background(), 9, "mouse")
	require.Error(t, err)

	var apiErr *apitypes.ApiError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 404, apiErr.Status)
	assert.Equal(t, "404 Not Found: bus 9 not found", err.Error())
}

func TestClientEmptyResponse(t *testing.T) {
	srv := startFakeServer(t, "", reply(""))
	_, err := apiclient.New(srv.addr()).Ping(context.Background())
	assert.EqualError(t, err, "empty response")
}

func TestClientWithPassword(t *testing.T) {
	srv := startFakeServer(t, "s3cret", reply(`{"server":"VIIPER","version":"1.0.0"}`))
	c := apiclient.NewWithConfig(srv.addr(), &apiclient.Config{Password: "s3cret"})
	resp, err := c.Ping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "VIIPER", resp.Server)
}

func TestClientMockTransport(t *testing.T) {
	var gotPath string
	var gotParams map[string]string
	tr := apiclient.NewMockTransport(func(path string, _ any, params map[string]string) (string, error) {
		gotPath, gotParams = path, params
		return `{"busId":3,"devId":"2","type":"mouse"}`, nil
	})
	dev, err := apiclient.WithTransport(tr).DeviceAdd(context.Background(), 3, "mouse")
	require.NoError(t, err)
	assert.Equal(t, "bus/{id}/add", gotPath)
	assert.Equal(t, map[string]string{"id": "3"}, gotParams)
	assert.Equal(t, "2", dev.DevId)

	_, err = apiclient.WithTransport(tr).OpenStream(context.Background(), 3, "2")
	assert.Error(t, err)
}

func TestClientCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := apiclient.New("127.0.0.1:1").Ping(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
