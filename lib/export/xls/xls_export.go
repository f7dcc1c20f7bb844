package xlsexport

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	dbmodels "ats-backend/models/db"
)

type Provider interface {
	ExportApplicationList(jobTitle string, list []dbmodels.Application) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var applicationHeaders = []string{"Name", "Contacts", "Job", "Status", "Stage", "Work authorization", "Submitted"}

func (i impl) ExportApplicationList(jobTitle string, list []dbmodels.Application) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, applicationHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		if err = writeApplicationData(f, sheet, jobTitle, list, row); err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx data")
		}
	}
	f.SetSheetName(sheet, "Applications")
	return f.WriteToBuffer()
}

func writeApplicationData(f *excelize.File, sheet, jobTitle string, list []dbmodels.Application, row int) error {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(applicationHeaders), len(list)+1); err != nil {
		return err
	}
	for _, item := range list {
		row++
		col := 1
		if err := writeColumn(f, sheet, col, row, item.FullName()); err != nil {
			return err
		}

		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%v\r%v", item.Phone, item.Email)); err != nil {
			return err
		}

		col++
		title := jobTitle
		if title == "" && item.Job != nil {
			title = item.Job.Title
		}
		if err := writeColumn(f, sheet, col, row, title); err != nil {
			return err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Status); err != nil {
			return err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Bucket().ToHuman()); err != nil {
			return err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.WorkAuthorization); err != nil {
			return err
		}

		col++
		if !item.SubmittedAt.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.SubmittedAt.Format("02.01.2006")); err != nil {
				return err
			}
		}
	}
	return nil
}
