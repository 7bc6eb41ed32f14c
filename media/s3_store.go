package media

import (
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// S3Store uploads post images into a bucket fronted by a CDN.
type S3Store struct {
	bucket    string
	urlPrefix string
	uploader  *s3manager.Uploader
}

// NewS3Store builds a store over the given bucket. urlPrefix is usually
// the CloudFront distribution in front of it; empty falls back to the raw
// bucket URL.
func NewS3Store(bucket string, urlPrefix string) (*S3Store, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String("us-west-1"),
	})
	if err != nil {
		return nil, err
	}

	if urlPrefix == "" {
		urlPrefix = fmt.Sprintf("https://%s.s3.amazonaws.com/", bucket)
	}

	return &S3Store{
		bucket:    bucket,
		urlPrefix: urlPrefix,
		uploader:  s3manager.NewUploader(sess),
	}, nil
}

func (s *S3Store) Save(fileName string, content io.Reader) (string, error) {
	key, err := keyFromFileName(fileName)
	if err != nil {
		return "", err
	}

	_, err = s.uploader.Upload(&s3manager.UploadInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   content,
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

func (s *S3Store) GetUrlFromKey(key string) string {
	return s.urlPrefix + key
}
