package numbersapi_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"num_market/internal/domain"
	"num_market/internal/domain/entity"
	"num_market/internal/infrastructure/numbersapi"
	"num_market/pkg/errcodes"
)

func TestClientFetch(t *testing.T) {
	rq := require.New(t)

	var gotBody string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[` + //nolint:errcheck
			`{"billId":"13812345678","lhYcje":"30","lhBdje":"80","lhQyq":"12","islh":"1"},` +
			`{"billId":13900000000,"lhYcje":120,"lhBdje":null,"islh":0}` +
			`]}`))
	}))
	defer server.Close()

	client := numbersapi.NewClient(server.URL, server.Client())

	rows, err := client.Fetch(context.Background(), entity.Query{
		LoadMore:  false,
		Parameter: "___________",
		Page:      1,
	})
	rq.NoError(err)

	rq.JSONEq(`{"loadMore":false,"parameter":"___________","typeList":[],"page":1}`, gotBody)

	rq.Len(rows, 2)

	rq.Equal("13812345678", rows[0].BillID.String())
	rq.Equal("30", rows[0].Deposit.String())
	rq.Equal("80", rows[0].MonthlyFee.String())
	rq.Equal("12", rows[0].ContractPeriod.String())
	rq.Equal("1", rows[0].Premium.String())

	rq.Equal("13900000000", rows[1].BillID.String())
	rq.Equal("120", rows[1].Deposit.String())
	rq.False(rows[1].MonthlyFee.Present())
	rq.False(rows[1].ContractPeriod.Present())
	rq.Equal("0", rows[1].Premium.String())
}

func TestClientFetchFailures(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name       string
		statusCode int
		body       string
		code       failure.ErrorCode
	}{
		{
			name:       "Non 2xx status",
			statusCode: http.StatusBadGateway,
			body:       `{"code":"InternalServerError"}`,
			code:       errcodes.UpstreamUnavailable,
		},
		{
			name:       "Missing data",
			statusCode: http.StatusOK,
			body:       `{"msg":"ok"}`,
			code:       errcodes.MalformedListing,
		},
		{
			name:       "Null data",
			statusCode: http.StatusOK,
			body:       `{"data":null}`,
			code:       errcodes.MalformedListing,
		},
		{
			name:       "Data is not an array",
			statusCode: http.StatusOK,
			body:       `{"data":"busy"}`,
			code:       errcodes.MalformedListing,
		},
		{
			name:       "Not JSON",
			statusCode: http.StatusOK,
			body:       `<html></html>`,
			code:       errcodes.MalformedListing,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.statusCode)
				w.Write([]byte(tc.body)) //nolint:errcheck
			}))
			defer server.Close()

			client := numbersapi.NewClient(server.URL, server.Client())

			rows, err := client.Fetch(context.Background(), entity.Query{Parameter: "___________", Page: 1})
			rq.Error(err)
			rq.Nil(rows)

			code, ok := domain.GetCode(err)
			rq.True(ok)
			rq.Equal(tc.code, code)
		})
	}
}

func TestClientFetchInvalidPage(t *testing.T) {
	rq := require.New(t)

	client := numbersapi.NewClient("http://127.0.0.1:0", nil)

	_, err := client.Fetch(context.Background(), entity.Query{Parameter: "___________", Page: 0})
	rq.Error(err)
	rq.True(failure.IsInvalidArgumentError(err))
}
