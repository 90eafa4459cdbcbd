// Package store pulls song files from a shared S3 library into the
// local songs directory.
package store

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func newSession() (*session.Session, error) {
	cfg := &aws.Config{}
	if endpoint := os.Getenv("AWS_ENDPOINT"); endpoint != "" {
		cfg.Endpoint = &endpoint
	}
	return session.NewSession(cfg)
}

// SyncSongs downloads every .yaml/.json object under prefix into
// songsDir, keyed by object base name. Returns how many files landed.
func SyncSongs(bucket, prefix, songsDir string) (int, error) {
	sess, err := newSession()
	if err != nil {
		return 0, err
	}
	client := s3.New(sess)
	downloader := s3manager.NewDownloader(sess)

	if err := os.MkdirAll(songsDir, 0o755); err != nil {
		return 0, err
	}

	count := 0
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	}
	err = client.ListObjectsV2Pages(input, func(page *s3.ListObjectsV2Output, lastPage bool) bool {
		for _, obj := range page.Contents {
			key := aws.StringValue(obj.Key)
			ext := strings.ToLower(filepath.Ext(key))
			if ext != ".yaml" && ext != ".yml" && ext != ".json" {
				continue
			}
			if err := download(downloader, bucket, key, songsDir); err != nil {
				logrus.Warnf("skipping %v: %v", key, err)
				continue
			}
			count++
		}
		return true
	})
	if err != nil {
		return count, err
	}

	logrus.Infof("synced %d songs from s3://%v/%v", count, bucket, prefix)
	return count, nil
}

// download stages through a temp file so a failed transfer never
// replaces an existing song.
func download(downloader *s3manager.Downloader, bucket, key, songsDir string) error {
	tmp := filepath.Join(songsDir, uuid.New().String()+".tmp")
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	_, err = downloader.Download(f, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	closeErr := f.Close()
	if err != nil {
		os.Remove(tmp)
		return err
	}
	if closeErr != nil {
		os.Remove(tmp)
		return closeErr
	}

	return os.Rename(tmp, filepath.Join(songsDir, filepath.Base(key)))
}
