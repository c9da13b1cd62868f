package export

import (
	"bytes"
	"time"

	"groomer-crm/internal/pkg/errs"
	"groomer-crm/internal/usecase/queries"

	"github.com/xuri/excelize/v2"
)

const SheetName = "Schedule"

var scheduleColumns = []string{
	"Date", "Start", "End", "Duration (min)", "Pet", "Species", "Breed",
	"Client", "Phone", "Service", "Status", "Notes",
}

// ScheduleWriter renders appointments as a single-sheet workbook.
type ScheduleWriter struct{}

func NewScheduleWriter() *ScheduleWriter {
	return &ScheduleWriter{}
}

func (w *ScheduleWriter) Render(views []*queries.AppointmentView, loc *time.Location) ([]byte, error) {
	if loc == nil {
		loc = time.UTC
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, errs.Wrap(err, "failed to rename sheet")
	}

	if err := writeRow(f, 1, toCells(scheduleColumns)); err != nil {
		return nil, err
	}
	if err := boldHeader(f); err != nil {
		return nil, err
	}

	for i, v := range views {
		start := v.StartAt.In(loc)
		end := v.EndAt.In(loc)
		row := []any{
			start.Format("2006-01-02"),
			start.Format("15:04"),
			end.Format("15:04"),
			v.DurationMinutes,
			v.PetName,
			v.PetSpecies,
			v.PetBreed,
			v.ClientName,
			v.ClientPhone,
			v.Service,
			v.Status,
			v.Notes,
		}
		if err := writeRow(f, i+2, row); err != nil {
			return nil, err
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, errs.Wrap(err, "failed to freeze header row")
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, errs.Wrap(err, "failed to write workbook")
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
		return errs.Wrapf(err, "failed to write row %d", row)
	}
	return nil
}

func boldHeader(f *excelize.File) error {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errs.Wrap(err, "failed to create header style")
	}
	last, err := excelize.CoordinatesToCellName(len(scheduleColumns), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", last, style); err != nil {
		return errs.Wrap(err, "failed to style header")
	}
	return nil
}

func toCells(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
