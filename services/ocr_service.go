package services

import (
	"context"
	"os"
	"strings"

	"backend/utils"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// OCRService extracts label text from product photos. Text detection
// is a black box here; everything downstream works on the raw string.
type OCRService struct {
	client *rekognition.Client
}

func NewOCRService() (*OCRService, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &OCRService{client: rekognition.NewFromConfig(cfg)}, nil
}

// ExtractText runs text detection on a base64 data-URI image and
// returns the detected lines joined with newlines, top to bottom.
func (o *OCRService) ExtractText(base64Img string) (string, error) {
	data, err := utils.DecodeDataURI(base64Img)
	if err != nil {
		return "", err
	}

	out, err := o.client.DetectText(context.TODO(), &rekognition.DetectTextInput{
		Image: &types.Image{Bytes: data},
	})
	if err != nil {
		return "", err
	}

	var lines []string
	for _, d := range out.TextDetections {
		if d.Type != types.TextTypesLine || d.DetectedText == nil {
			continue
		}
		lines = append(lines, *d.DetectedText)
	}
	return strings.Join(lines, "\n"), nil
}
