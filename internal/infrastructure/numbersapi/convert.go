package numbersapi

import (
	"num_market/internal/domain/entity"
	"num_market/internal/domain/value"
	"num_market/pkg/lox"
	"num_market/pkg/rest"
)

func newRESTRequest(query entity.Query) rest.NumbersRequest {
	typeList := query.TypeList
	if typeList == nil {
		typeList = []string{}
	}

	return rest.NumbersRequest{
		LoadMore:  query.LoadMore,
		Parameter: query.Parameter,
		TypeList:  typeList,
		Page:      query.Page,
	}
}

func newDomainListings(listings []rest.Listing) []entity.RawListing {
	return lox.Map(listings, newDomainListing)
}

func newDomainListing(l rest.Listing) entity.RawListing {
	return entity.RawListing{
		BillID:         value.ParseRawField(l.BillID),
		Deposit:        value.ParseRawField(l.LhYcje),
		MonthlyFee:     value.ParseRawField(l.LhBdje),
		ContractPeriod: value.ParseRawField(l.LhQyq),
		Premium:        value.ParseRawField(l.Islh),
	}
}
