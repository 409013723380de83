/*
Package testcontainers runs end-to-end transfers against real servers started in the local Docker daemon: vsftpd and
atmoz/sftp as sources, and fake-gcs-server, localstack, minio and azurite as destinations. Every source is moved into
every destination and the resulting objects are read back.

	cd testcontainers && go test ./...
*/
package testcontainers
