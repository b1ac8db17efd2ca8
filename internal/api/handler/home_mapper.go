package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/homefinder/realtor-api/internal/core/domain"
	"github.com/homefinder/realtor-api/internal/core/ports"
)

// --- Request → Service input ---

func toHomeFilter(q homeQuery) ports.HomeFilter {
	return ports.HomeFilter{
		City:         q.City,
		MinPrice:     q.MinPrice,
		MaxPrice:     q.MaxPrice,
		PropertyType: domain.PropertyType(q.PropertyType),
	}
}

func toCreateHomeInput(req createHomeRequest) ports.CreateHomeInput {
	urls := make([]string, 0, len(req.Images))
	for _, img := range req.Images {
		urls = append(urls, img.URL)
	}
	return ports.CreateHomeInput{
		Address:           req.Address,
		City:              req.City,
		Price:             req.Price,
		LandSize:          req.LandSize,
		PropertyType:      domain.PropertyType(req.PropertyType),
		NumberOfBedrooms:  req.NumberOfBedrooms,
		NumberOfBathrooms: req.NumberOfBathrooms,
		ImageURLs:         urls,
	}
}

func toHomePatch(req updateHomeRequest) domain.HomePatch {
	p := domain.HomePatch{
		Address:           req.Address,
		City:              req.City,
		Price:             req.Price,
		LandSize:          req.LandSize,
		NumberOfBedrooms:  req.NumberOfBedrooms,
		NumberOfBathrooms: req.NumberOfBathrooms,
	}
	if req.PropertyType != nil {
		pt := domain.PropertyType(*req.PropertyType)
		p.PropertyType = &pt
	}
	return p
}

// --- Domain → Response ---

func toHomeResponse(h *domain.Home) homeResponse {
	images := make([]string, 0, len(h.Images))
	for _, img := range h.Images {
		images = append(images, img.URL)
	}
	return homeResponse{
		ID:                h.ID,
		Address:           h.Address,
		City:              h.City,
		Price:             h.Price,
		LandSize:          h.LandSize,
		PropertyType:      string(h.PropertyType),
		NumberOfBedrooms:  h.NumberOfBedrooms,
		NumberOfBathrooms: h.NumberOfBathrooms,
		ListedDate:        h.ListedDate,
		Images:            images,
	}
}

func toSummaryResponses(in []ports.HomeSummary) []homeSummaryResponse {
	out := make([]homeSummaryResponse, 0, len(in))
	for _, s := range in {
		out = append(out, homeSummaryResponse{
			ID:                s.ID,
			Address:           s.Address,
			City:              s.City,
			Price:             s.Price,
			PropertyType:      string(s.PropertyType),
			NumberOfBedrooms:  s.NumberOfBedrooms,
			NumberOfBathrooms: s.NumberOfBathrooms,
			Image:             s.Image,
		})
	}
	return out
}

func toContactResponse(c domain.Contact) contactResponse {
	return contactResponse{Name: c.Name, Email: c.Email, Phone: c.Phone}
}

func toInquiryResponses(in []ports.InquiryView) []inquiryResponse {
	out := make([]inquiryResponse, 0, len(in))
	for _, v := range in {
		out = append(out, inquiryResponse{
			ID:        v.ID,
			Message:   v.Message,
			CreatedAt: v.CreatedAt,
			Buyer:     toContactResponse(v.Buyer),
		})
	}
	return out
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
