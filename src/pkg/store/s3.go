package store

import (
	"bytes"
	"path"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

// S3Store uploads documents under <prefix>/<name>. Credentials come from the
// usual AWS environment/config chain.
type S3Store struct {
	uploader *s3manager.Uploader
	bucket   string
	prefix   string
}

func NewS3(region string, bucket string, prefix string) (store *S3Store, e *xerr.Error) {
	sess, err := session.NewSession(&aws.Config{Region: aws.String(region)})
	if err != nil {
		e = xerr.NewError(err, "create AWS session", region)
		return
	}
	return &S3Store{
		uploader: s3manager.NewUploader(sess),
		bucket:   bucket,
		prefix:   prefix,
	}, nil
}

func (s *S3Store) Save(name string, data []byte) *xerr.Error {
	key := path.Join(s.prefix, name)
	_, err := s.uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return xerr.NewError(err, "upload document to S3", s.bucket+"/"+key)
	}
	tl.Log(tl.Info, palette.Green, "Uploaded '%s' to bucket '%s'", key, s.bucket)
	return nil
}
