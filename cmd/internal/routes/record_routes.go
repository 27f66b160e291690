package routes

import (
	"clinicdesk/cmd/internal/service"
	"clinicdesk/cmd/internal/utils/apierror"
	"github.com/labstack/echo/v4"
	"net/http"
)

type RecordService interface {
	GetRecords() ([]*service.RecordResponse, apierror.ErrorResponse)
	GetRecord(id string) (*service.RecordResponse, apierror.ErrorResponse)
	CreateRecord(req *service.RecordRequest) (*service.RecordResponse, apierror.ErrorResponse)
}

type DefaultRecordRoute struct {
	RecordService RecordService
}

func NewRecordDefault(recordService RecordService) *DefaultRecordRoute {
	return &DefaultRecordRoute{RecordService: recordService}
}

func (r *DefaultRecordRoute) GetRecords(c echo.Context) error {
	records, apierr := r.RecordService.GetRecords()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, records)
}

func (r *DefaultRecordRoute) GetRecord(c echo.Context) error {
	record, apierr := r.RecordService.GetRecord(c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, record)
}

func (r *DefaultRecordRoute) CreateRecord(c echo.Context) error {
	var req service.RecordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, apierror.MalformedBodyError)
	}

	record, apierr := r.RecordService.CreateRecord(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, record)
}
