package schema

const schema = `CREATE TABLE kvstore (k VARCHAR(255) PRIMARY KEY, v TEXT, expires BIGINT)`

const dropSchema = `DROP TABLE kvstore`
