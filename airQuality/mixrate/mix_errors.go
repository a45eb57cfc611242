package mixrate

import "fmt"

// 时间步不均匀: 步长差分总体标准差/时间均值 超出精度要求
type NonUniformTimestepError struct {
	CV   float64 // std(diff(t)) / mean(t)
	Prec float64
}

func (e *NonUniformTimestepError) Error() string {
	return fmt.Sprintf("timestep is not uniform to specified precision: cv=%g prec=%g", e.CV, e.Prec)
}

// 非法约束模式, 合法取值仅 "" 与 "init"
type InvalidConstraintError struct {
	Constrain string
}

func (e *InvalidConstraintError) Error() string {
	return fmt.Sprintf("invalid constraint: %q", e.Constrain)
}

// CSV表头缺少指定列
type ColumnMissingError struct {
	Label string
	Path  string
}

func (e *ColumnMissingError) Error() string {
	return fmt.Sprintf("column %q not found in %s", e.Label, e.Path)
}

// 测量序列长度非法
type BadSeriesError struct {
	LenT, LenX, LenY int
}

func (e *BadSeriesError) Error() string {
	return fmt.Sprintf("series lengths invalid: len(t)=%d len(x)=%d len(y)=%d, need equal and >= 2",
		e.LenT, e.LenX, e.LenY)
}
