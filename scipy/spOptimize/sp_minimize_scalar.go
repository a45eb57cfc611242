// scipy.optimize.minimize_scalar(method='bounded') 即 fminbound 的Go实现
// 有界Brent: 黄金分割 + 抛物线插值, 每次迭代只求值一次目标函数
package spOptimize

import "math"

const (
	XATOL_DEFAULT  = 1e-5 // 横坐标绝对收敛容差
	MAXFUN_DEFAULT = 500  // 目标函数求值预算
)

// 优化结果
type OptimizeResult struct {
	X       float64 // 最优点
	Fun     float64 // 最优点处目标值
	NIter   int     // 迭代次数
	NFev    int     // 目标函数求值次数
	Success bool    // 是否收敛
	Message string
}

func MinimizeScalarBounded(f func(float64) float64, lo, hi float64) OptimizeResult {
	return MinimizeScalarBoundedOpt(f, lo, hi, XATOL_DEFAULT, MAXFUN_DEFAULT)
}

func MinimizeScalarBoundedOpt(f func(float64) float64, lo, hi, xatol float64, maxFun int) OptimizeResult {
	if lo > hi {
		return OptimizeResult{
			X: math.NaN(), Fun: math.NaN(),
			Message: "lower bound exceeds upper bound",
		}
	}

	sqrtEps := math.Sqrt(2.2e-16)
	goldenMean := 0.5 * (3.0 - math.Sqrt(5.0))

	a, b := lo, hi
	fulc := a + goldenMean*(b-a)
	nfc, xf := fulc, fulc
	rat, e := 0.0, 0.0
	x := xf
	fx := f(x)
	num := 1
	fu := math.Inf(1)
	ffulc, fnfc := fx, fx
	xm := 0.5 * (a + b)
	tol1 := sqrtEps*math.Abs(xf) + xatol/3.0
	tol2 := 2.0 * tol1

	iter := 0
	budgetExhausted := false

	for math.Abs(xf-xm) > tol2-0.5*(b-a) {
		golden := true

		// |e| > tol1 时尝试抛物线插值
		if math.Abs(e) > tol1 {
			golden = false
			r := (xf - nfc) * (fx - ffulc)
			q := (xf - fulc) * (fx - fnfc)
			p := (xf-fulc)*q - (xf-nfc)*r
			q = 2.0 * (q - r)
			if q > 0.0 {
				p = -p
			}
			q = math.Abs(q)
			r = e
			e = rat

			// 抛物线步是否可接受
			if math.Abs(p) < math.Abs(0.5*q*r) && p > q*(a-xf) && p < q*(b-xf) {
				rat = p / q
				x = xf + rat
				if (x-a) < tol2 || (b-x) < tol2 {
					rat = tol1 * sign(xm-xf)
				}
			} else {
				golden = true
			}
		}

		// 黄金分割步
		if golden {
			if xf >= xm {
				e = a - xf
			} else {
				e = b - xf
			}
			rat = goldenMean * e
		}

		x = xf + sign(rat)*math.Max(math.Abs(rat), tol1)
		fu = f(x)
		num++
		iter++

		if fu <= fx {
			if x >= xf {
				a = xf
			} else {
				b = xf
			}
			fulc, ffulc = nfc, fnfc
			nfc, fnfc = xf, fx
			xf, fx = x, fu
		} else {
			if x < xf {
				a = x
			} else {
				b = x
			}
			if fu <= fnfc || nfc == xf {
				fulc, ffulc = nfc, fnfc
				nfc, fnfc = x, fu
			} else if fu <= ffulc || fulc == xf || fulc == nfc {
				fulc, ffulc = x, fu
			}
		}

		xm = 0.5 * (a + b)
		tol1 = sqrtEps*math.Abs(xf) + xatol/3.0
		tol2 = 2.0 * tol1

		if num >= maxFun {
			budgetExhausted = true
			break
		}
	}

	res := OptimizeResult{X: xf, Fun: fx, NIter: iter, NFev: num}
	switch {
	case math.IsNaN(xf) || math.IsNaN(fx) || math.IsNaN(fu):
		res.Message = "NaN result encountered"
	case budgetExhausted:
		res.Message = "maximum number of function calls reached"
	default:
		res.Success = true
		res.Message = "solution found"
	}
	return res
}

// np.sign(v) + (v == 0), 即零取+1
func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
