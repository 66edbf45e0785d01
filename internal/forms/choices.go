package forms

import "github.com/yoockh/hojadevida/internal/models"

type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var (
	SexChoices = []Choice{
		{Value: string(models.SexMale), Label: "Hombre"},
		{Value: string(models.SexFemale), Label: "Mujer"},
	}

	RecognitionTypeChoices = []Choice{
		{Value: string(models.RecognitionAcademic), Label: models.RecognitionAcademic.Label()},
		{Value: string(models.RecognitionPublic), Label: models.RecognitionPublic.Label()},
		{Value: string(models.RecognitionPrivate), Label: models.RecognitionPrivate.Label()},
	}

	ConditionChoices = []Choice{
		{Value: string(models.ConditionGood), Label: models.ConditionGood.Label()},
		{Value: string(models.ConditionFair), Label: models.ConditionFair.Label()},
	}
)

func validChoice(choices []Choice, v string) bool {
	for _, c := range choices {
		if c.Value == v {
			return true
		}
	}
	return false
}
