package ols

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// 定义线性回归模型的参数, 对齐 scipy.stats.linregress 的五元组
type LinearRegressionModel struct {
	Slope     float64
	Intercept float64
	RValue    float64 // Pearson相关系数
	PValue    float64 // 双尾t检验p值 (H0: slope = 0)
	Stderr    float64 // 斜率标准误
}

// Regression 返回ols斜率项、截距项及回归诊断
// NaN样本不做掩码处理, 按矩计算自然传播到全部输出
func Regression(x, y []float64) LinearRegressionModel {
	if !paramsValidate(x, y) {
		nan := math.NaN()
		return LinearRegressionModel{Slope: nan, Intercept: nan, RValue: nan, PValue: nan, Stderr: nan}
	}
	n := float64(len(x))
	xmean := stat.Mean(x, nil)
	ymean := stat.Mean(y, nil)
	// 样本矩即可: slope/r/stderr 都是矩的比值, 与偏置因子无关
	ssxm := stat.Variance(x, nil)
	ssym := stat.Variance(y, nil)
	ssxym := stat.Covariance(x, y, nil)

	slope := ssxym / ssxm
	intercept := ymean - slope*xmean

	var rvalue float64
	if ssxm == 0 || ssym == 0 {
		rvalue = 0
	} else {
		rvalue = ssxym / math.Sqrt(ssxm*ssym)
		// 浮点误差可能略超[-1,1]
		if rvalue > 1 {
			rvalue = 1
		} else if rvalue < -1 {
			rvalue = -1
		}
	}

	df := n - 2
	if df <= 0 {
		return LinearRegressionModel{
			Slope: slope, Intercept: intercept, RValue: rvalue,
			PValue: math.NaN(), Stderr: math.NaN(),
		}
	}

	// t = r*sqrt(df/((1-r)(1+r))), TINY防r=±1时除零
	const tiny = 1e-20
	tstat := rvalue * math.Sqrt(df/((1-rvalue+tiny)*(1+rvalue+tiny)))
	tdist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	pvalue := 2 * tdist.Survival(math.Abs(tstat))
	stderr := math.Sqrt((1 - rvalue*rvalue) * ssym / ssxm / df)

	return LinearRegressionModel{
		Slope:     slope,
		Intercept: intercept,
		RValue:    rvalue,
		PValue:    pvalue,
		Stderr:    stderr,
	}
}

func paramsValidate(x, y []float64) bool {
	return len(x) == len(y) && len(x) >= 2
}
