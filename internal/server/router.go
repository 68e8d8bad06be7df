package server

import (
	"github.com/go-chi/chi/v5"

	"num_market/pkg/logx"
	"num_market/pkg/middlewarex"
)

func NewRouter(s Server, logFieldMaxLen int) chi.Router {
	masker := logx.NewSensitiveDataMasker()

	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.RequestLogging(masker, logFieldMaxLen),
		middlewarex.ResponseLogging(masker, logFieldMaxLen),
		middlewarex.Recovery,
	)

	s.RegisterRoutes(r)

	return r
}
