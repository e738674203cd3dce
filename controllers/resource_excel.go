package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"guid-gatherer/utils"
	"guid-gatherer/validation"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Columns every export carries in addition to the declared fields. Import
// accepts and ignores them so an export can be re-imported as is.
var systemColumns = map[string]bool{"id": true, "createdAt": true, "updatedAt": true}

type ImportResult struct {
	TotalRows int `json:"totalRows"`
	Created   int `json:"created"`
}

func (c *ResourceController[M, P]) Export(ctx *fiber.Ctx) error {
	records, err := c.Store.FindAll(ctx.UserContext())
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := c.Resource.Sheet
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	header := append([]string{"id"}, c.Resource.Columns...)
	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return err
	}

	for i := range records {
		values, err := fieldValues(&records[i])
		if err != nil {
			return err
		}

		row := make([]interface{}, len(header))
		for j, col := range header {
			row[j] = values[col]
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, xlsxContentType)
	ctx.Attachment(strings.ToLower(sheet) + ".xlsx")
	return ctx.Send(buf.Bytes())
}

// Import inserts every data row of the uploaded workbook, or none of them
// when any row fails validation.
func (c *ResourceController[M, P]) Import(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "File is required")
	}
	if !strings.EqualFold(filepath.Ext(file.Filename), ".xlsx") {
		return fiber.NewError(fiber.StatusBadRequest, "Only Excel files (.xlsx) are allowed")
	}

	content, err := file.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Failed to open file")
	}
	defer content.Close()

	f, err := excelize.OpenReader(content)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Failed to read Excel file")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "No sheets found in Excel file")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Failed to read rows")
	}
	if len(rows) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Excel file must contain a header row")
	}

	header, err := c.importHeader(rows[0])
	if err != nil {
		return err
	}

	result := ImportResult{}
	records := make([]M, 0, len(rows)-1)
	var violations []utils.FieldViolation

	for i, row := range rows[1:] {
		rowNum := i + 2
		fields := rowFields(header, row)
		if len(fields) == 0 {
			continue
		}
		result.TotalRows++

		record, err := c.recordFromRow(fields)
		if err != nil {
			var validationErr *utils.ValidationError
			if !errors.As(err, &validationErr) {
				return err
			}
			for _, v := range validationErr.Violations {
				v.Row = rowNum
				v.Message = fmt.Sprintf("row %d: %s", rowNum, v.Message)
				violations = append(violations, v)
			}
			continue
		}
		records = append(records, *record)
	}

	if len(violations) > 0 {
		return &utils.ValidationError{Context: "import", Violations: violations}
	}

	if err := c.Store.CreateBatch(ctx.UserContext(), records); err != nil {
		return err
	}
	result.Created = len(records)

	return utils.Success(ctx, fiber.StatusOK,
		fmt.Sprintf("Import completed: %d %s created", result.Created, strings.ToLower(c.Resource.Sheet)),
		result)
}

// importHeader maps column positions to field names; "" marks ignored columns.
func (c *ResourceController[M, P]) importHeader(row []string) ([]string, error) {
	known := make(map[string]bool, len(c.Resource.Columns))
	for _, col := range c.Resource.Columns {
		known[col] = true
	}

	header := make([]string, len(row))
	for i, cell := range row {
		name := strings.TrimSpace(cell)
		switch {
		case name == "" || systemColumns[name]:
		case known[name]:
			header[i] = name
		default:
			return nil, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Unknown column %q", name))
		}
	}
	return header, nil
}

func (c *ResourceController[M, P]) recordFromRow(fields map[string]string) (*M, error) {
	body, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}

	var payload P
	if err := utils.DecodeStrict(body, &payload); err != nil {
		return nil, err
	}

	var record M
	c.Resource.Apply(&record, &payload)
	if err := validation.Struct(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

// rowFields returns the non-blank cells of row keyed by field name.
func rowFields(header []string, row []string) map[string]string {
	fields := make(map[string]string)
	for i, cell := range row {
		if i >= len(header) || header[i] == "" {
			continue
		}
		if value := strings.TrimSpace(cell); value != "" {
			fields[header[i]] = value
		}
	}
	return fields
}

// fieldValues flattens a record into its JSON field values.
func fieldValues(record interface{}) (map[string]interface{}, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	values := make(map[string]interface{})
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	for k, v := range values {
		if v == nil {
			values[k] = ""
		}
	}
	return values, nil
}
