package mixrate

import "gonum.org/v1/gonum/stat"

// 测量序列: 时间t、室内x、室外y, 等长且按时间递增
type Series struct {
	T []float64
	X []float64
	Y []float64
}

func (s Series) Validate() error {
	if len(s.T) != len(s.X) || len(s.T) != len(s.Y) || len(s.T) < 2 {
		return &BadSeriesError{LenT: len(s.T), LenX: len(s.X), LenY: len(s.Y)}
	}
	return nil
}

// UniformStep 校验时间步均匀性并返回步长 ts = t[1]-t[0]
// 判据: 步长差分的总体标准差 / 时间均值 > prec 则拒绝
// 离散混合模型假定固定步长, 不均匀采样会使模拟失效
func (s Series) UniformStep(prec float64) (float64, error) {
	diffs := make([]float64, len(s.T)-1)
	for i := 1; i < len(s.T); i++ {
		diffs[i-1] = s.T[i] - s.T[i-1]
	}
	cv := stat.PopStdDev(diffs, nil) / stat.Mean(s.T, nil)
	if cv > prec {
		return 0, &NonUniformTimestepError{CV: cv, Prec: prec}
	}
	return s.T[1] - s.T[0], nil
}
