package phpp

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Workbook is the part of a spreadsheet the writer needs.
type Workbook interface {
	SetCellValue(sheet, cell string, value interface{}) error
	GetCalcProps() (excelize.CalcPropsOptions, error)
	SetCalcProps(opts *excelize.CalcPropsOptions) error
}

var _ Workbook = (*excelize.File)(nil)

const (
	calcModeManual = "manual"
	calcModeAuto   = "auto"
)

// Silent runs fn with automatic recalculation switched off and restores the
// previous calculation settings on every exit path, including a panic in fn.
func Silent(wb Workbook, fn func() error) (err error) {
	prev, err := wb.GetCalcProps()
	if err != nil {
		return fmt.Errorf("failed to read calculation settings: %w", err)
	}

	manual, off := calcModeManual, false
	quiet := excelize.CalcPropsOptions{
		CalcMode:       &manual,
		CalcOnSave:     &off,
		FullCalcOnLoad: &off,
	}
	if err := wb.SetCalcProps(&quiet); err != nil {
		return fmt.Errorf("failed to disable recalculation: %w", err)
	}

	restore := restoreProps(prev)
	defer func() {
		if rerr := wb.SetCalcProps(&restore); rerr != nil && err == nil {
			err = fmt.Errorf("failed to restore calculation settings: %w", rerr)
		}
	}()

	return fn()
}

// restoreProps carries back the settings Silent overrides, falling back to
// the workbook defaults where prev leaves them unset.
func restoreProps(prev excelize.CalcPropsOptions) excelize.CalcPropsOptions {
	mode, onSave, fullOnLoad := calcModeAuto, true, false
	if prev.CalcMode != nil && *prev.CalcMode != "" {
		mode = *prev.CalcMode
	}
	if prev.CalcOnSave != nil {
		onSave = *prev.CalcOnSave
	}
	if prev.FullCalcOnLoad != nil {
		fullOnLoad = *prev.FullCalcOnLoad
	}
	return excelize.CalcPropsOptions{
		CalcMode:       &mode,
		CalcOnSave:     &onSave,
		FullCalcOnLoad: &fullOnLoad,
	}
}

// Open reads the workbook at path.
func Open(path string) (*excelize.File, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	return f, nil
}

// Save writes f to saveAs, or back over its source file when saveAs is
// empty.
func Save(f *excelize.File, saveAs string) error {
	if saveAs == "" {
		if err := f.Save(); err != nil {
			return fmt.Errorf("failed to save workbook %s: %w", f.Path, err)
		}
		return nil
	}
	if err := f.SaveAs(saveAs); err != nil {
		return fmt.Errorf("failed to save workbook as %s: %w", saveAs, err)
	}
	return nil
}
