package config

type WorkerKeyStruct struct {
	SyncComplianceQueue string
}

var WorkerKey = &WorkerKeyStruct{
	SyncComplianceQueue: "sync_compliance_queue",
}
