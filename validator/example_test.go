package validator_test

import (
	"fmt"
	"os"

	"github.com/joeycumines/go-snippetcheck/validator"
)

func ExampleValidator_Run() {
	v, err := validator.New(
		validator.WithConsole(validator.NewWriterConsole(os.Stdout, os.Stdout)),
	)
	if err != nil {
		panic(err)
	}

	report := v.Run()
	fmt.Println(`passed:`, report.Passed)

	//output:
	//event listener registered: DOMContentLoaded
	//chart initialized successfully!
	//chart config: {
	//   "type": "bar",
	//   "data": {
	//     "labels": [
	//       "Type 1",
	//       "Type 2",
	//       "Type 3"
	//     ],
	//     "datasets": [
	//       {
	//         "label": "Predictions",
	//         "data": [
	//           10,
	//           20,
	//           30
	//         ],
	//         "backgroundColor": [
	//           "rgba(255, 99, 132, 0.6)",
	//           "rgba(54, 162, 235, 0.6)",
	//           "rgba(255, 206, 86, 0.6)",
	//           "rgba(75, 192, 192, 0.6)",
	//           "rgba(153, 102, 255, 0.6)",
	//           "rgba(255, 159, 64, 0.6)"
	//         ],
	//         "borderColor": [
	//           "rgba(255, 99, 132, 1)",
	//           "rgba(54, 162, 235, 1)",
	//           "rgba(255, 206, 86, 1)",
	//           "rgba(75, 192, 192, 1)",
	//           "rgba(153, 102, 255, 1)",
	//           "rgba(255, 159, 64, 1)"
	//         ],
	//         "borderWidth": 1
	//       }
	//     ]
	//   },
	//   "options": {
	//     "responsive": true,
	//     "maintainAspectRatio": false,
	//     "scales": {
	//       "y": {
	//         "beginAtZero": true,
	//         "ticks": {
	//           "precision": 0
	//         }
	//       }
	//     },
	//     "plugins": {
	//       "legend": {
	//         "display": false
	//       }
	//     }
	//   }
	// }
	//✅ snippet validation passed: code parsed and ran
	//passed: true
}

func ExampleClassify() {
	for _, confidence := range []float64{0.69, 0.70, 0.39, 0.40, 0.0, 1.0} {
		fmt.Println(confidence, validator.Classify(confidence))
	}
	//output:
	//0.69 low
	//0.7 high
	//0.39 low
	//0.4 medium
	//0 low
	//1 high
}
